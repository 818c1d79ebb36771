package guid

import (
	"errors"
	"testing"
)

func TestUUID_EncodeToHex(t *testing.T) {
	expected := "f47ac10b58cc4372a5670e02b2c3d479"
	if got := testUUID.EncodeToHex(); got != expected {
		t.Errorf("EncodeToHex() = %v, want %v", got, expected)
	}
}

func TestDecodeFromHex(t *testing.T) {
	got, err := DecodeFromHex("f47ac10b58cc4372a5670e02b2c3d479")
	if err != nil {
		t.Fatalf("DecodeFromHex() error = %v", err)
	}
	if got != testUUID {
		t.Errorf("DecodeFromHex() = %v, want %v", got, testUUID)
	}
}

func TestDecodeFromHex_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too short", "f47ac10b58cc4372"},
		{"too long", "f47ac10b58cc4372a5670e02b2c3d479ff"},
		{"invalid hex", "g47ac10b58cc4372a5670e02b2c3d479"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeFromHex(tt.input); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("DecodeFromHex(%q) error = %v, want ErrInvalidFormat", tt.input, err)
			}
		})
	}
}

func TestDecodeSQLFromHex(t *testing.T) {
	stored := ToSQLOrder(testUUID)
	got, err := DecodeSQLFromHex(stored.Hex())
	if err != nil {
		t.Fatalf("DecodeSQLFromHex() error = %v", err)
	}
	if got != stored {
		t.Errorf("DecodeSQLFromHex() = %s, want %s", got.Hex(), stored.Hex())
	}
	// The stored hex is not the RFC hex.
	if rfc, _ := DecodeFromHex(stored.Hex()); rfc == testUUID {
		t.Error("stored hex decoded as RFC order should differ")
	}
}

func TestUUID_EncodeDecodeHex_RoundTrip(t *testing.T) {
	uuid := Must(NewGenerator().New())
	decoded, err := DecodeFromHex(uuid.EncodeToHex())
	if err != nil {
		t.Fatalf("DecodeFromHex() error = %v", err)
	}
	if uuid != decoded {
		t.Errorf("Round-trip failed: got %v, want %v", decoded, uuid)
	}
}

func TestBase64_RoundTrip(t *testing.T) {
	if got := testUUID.EncodeToBase64(); got != "9HrBC1jMQ3KlZw4CssPUeQ" {
		t.Errorf("EncodeToBase64() = %s", got)
	}
	if got := testUUID.EncodeToBase64Std(); got != "9HrBC1jMQ3KlZw4CssPUeQ==" {
		t.Errorf("EncodeToBase64Std() = %s", got)
	}

	decoded, err := DecodeFromBase64(testUUID.EncodeToBase64())
	if err != nil || decoded != testUUID {
		t.Errorf("DecodeFromBase64() = %v, %v", decoded, err)
	}
	decoded, err = DecodeFromBase64Std(testUUID.EncodeToBase64Std())
	if err != nil || decoded != testUUID {
		t.Errorf("DecodeFromBase64Std() = %v, %v", decoded, err)
	}

	if ToSQLOrder(testUUID).EncodeToBase64() == testUUID.EncodeToBase64() {
		t.Error("SQL order base64 should encode the stored bytes")
	}
}

func TestDecodeFromBase64_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"invalid characters", "!!!invalid!!!", ErrInvalidFormat},
		{"wrong length", "AQID", ErrInvalidLength},
		{"empty", "", ErrInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeFromBase64(tt.input); !errors.Is(err, tt.want) {
				t.Errorf("DecodeFromBase64(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestFromBytes(t *testing.T) {
	uuid, err := FromBytes(testUUID[:])
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if uuid != testUUID {
		t.Errorf("FromBytes() = %v, want %v", uuid, testUUID)
	}

	if _, err := FromBytes([]byte{1, 2, 3}); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("FromBytes() error = %v, want ErrInvalidLength", err)
	}
}

func TestMustFromBytes(t *testing.T) {
	if uuid := MustFromBytes(testUUID[:]); uuid != testUUID {
		t.Errorf("MustFromBytes() = %v", uuid)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustFromBytes() did not panic on invalid input")
		}
	}()
	MustFromBytes([]byte{1, 2, 3})
}
