package guid

import (
	"crypto/sha1"
	"fmt"
	"math/rand"
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNameBased_GoldenVectors(t *testing.T) {
	tests := []struct {
		name      string
		namespace UUID
		input     string
		build     func(UUID, []byte) UUID
		want      string
	}{
		{"md5 www.example.com", NamespaceDNS, "www.example.com", NewMD5, "5df41881-3aed-3515-88a7-2f4a814cf09e"},
		{"sha1 www.example.com", NamespaceDNS, "www.example.com", NewSHA1, "2ed6657d-e927-568b-95e1-2665a8aea6a2"},
		{"md5 empty name", NamespaceDNS, "", NewMD5, "c87ee674-4ddc-3efe-a74e-dfe25da5d7b3"},
		{"sha1 url namespace", NamespaceURL, "https://example.com/", NewSHA1, "dd2c1780-811a-5296-81c5-178a0ef488bc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build(tt.namespace, []byte(tt.input)).String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNameBased_MatchesGoogle(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		name := make([]byte, r.Intn(64))
		r.Read(name)
		ns := googleuuid.UUID(NamespaceOID)

		if got, want := NewMD5(NamespaceOID, name), googleuuid.NewMD5(ns, name); got != UUID(want) {
			t.Fatalf("NewMD5(%x) = %v, google = %v", name, got, want)
		}
		if got, want := NewSHA1(NamespaceOID, name), googleuuid.NewSHA1(ns, name); got != UUID(want) {
			t.Fatalf("NewSHA1(%x) = %v, google = %v", name, got, want)
		}
	}
}

func TestNameBased_Deterministic(t *testing.T) {
	for _, name := range []string{"", "a", "www.example.com", "\x00\xff"} {
		if NewMD5String(NamespaceX500, name) != NewMD5String(NamespaceX500, name) {
			t.Errorf("NewMD5 not deterministic for %q", name)
		}
		if NewSHA1String(NamespaceX500, name) != NewSHA1String(NamespaceX500, name) {
			t.Errorf("NewSHA1 not deterministic for %q", name)
		}
	}
}

func TestNameBased_Distinct(t *testing.T) {
	seen := make(map[UUID]string)
	for i := 0; i < 2000; i++ {
		name := fmt.Sprintf("name-%d", i)
		for _, u := range []UUID{NewMD5String(NamespaceDNS, name), NewSHA1String(NamespaceDNS, name)} {
			if prev, ok := seen[u]; ok {
				t.Fatalf("%q and %q collided on %v", prev, name, u)
			}
			seen[u] = name
		}
	}
}

func TestNameBased_VersionAndVariant(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		name := make([]byte, 1+r.Intn(32))
		r.Read(name)

		md5ID := NewMD5(NamespaceDNS, name)
		sha1ID := NewSHA1(NamespaceDNS, name)

		if md5ID.Version() != VersionNameBasedMD5 || ToSQLOrder(md5ID)[7]>>4 != 3 {
			t.Errorf("NewMD5 version nibble wrong: %v", md5ID)
		}
		if sha1ID.Version() != VersionNameBasedSHA1 || ToSQLOrder(sha1ID)[7]>>4 != 5 {
			t.Errorf("NewSHA1 version nibble wrong: %v", sha1ID)
		}
		if md5ID.Variant() != VariantRFC4122 || sha1ID.Variant() != VariantRFC4122 {
			t.Errorf("variant bits wrong: %v %v", md5ID, sha1ID)
		}
		if err := sha1ID.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	}
}

func TestNameBased_KeepsDigestBits(t *testing.T) {
	h := sha1.New()
	h.Write(NamespaceDNS[:])
	h.Write([]byte("www.example.com"))
	sum := h.Sum(nil)

	u := NewSHA1String(NamespaceDNS, "www.example.com")
	for i := 0; i < 16; i++ {
		switch i {
		case 6:
			if u[i]&0x0f != sum[i]&0x0f {
				t.Errorf("byte 6 low nibble = %x, digest %x", u[i]&0x0f, sum[i]&0x0f)
			}
		case 8:
			if u[i]&0x3f != sum[i]&0x3f {
				t.Errorf("byte 8 low bits = %x, digest %x", u[i]&0x3f, sum[i]&0x3f)
			}
		default:
			if u[i] != sum[i] {
				t.Errorf("byte %d = %02x, digest %02x", i, u[i], sum[i])
			}
		}
	}
}

func TestNewHash_ResetsHash(t *testing.T) {
	h := sha1.New()
	h.Write([]byte("left over"))
	got := NewHash(h, NamespaceDNS, []byte("www.example.com"), VersionNameBasedSHA1)
	if want := NewSHA1String(NamespaceDNS, "www.example.com"); got != want {
		t.Errorf("NewHash() = %v, want %v", got, want)
	}
}

func TestNamespaceByName(t *testing.T) {
	tests := []struct {
		in      string
		want    UUID
		wantErr bool
	}{
		{in: "dns", want: NamespaceDNS},
		{in: "URL", want: NamespaceURL},
		{in: "oid", want: NamespaceOID},
		{in: "x500", want: NamespaceX500},
		{in: "f47ac10b-58cc-4372-a567-0e02b2c3d479", want: testUUID},
		{in: "nope", wantErr: true},
	}
	for _, tt := range tests {
		got, err := NamespaceByName(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("NamespaceByName(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NamespaceByName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
