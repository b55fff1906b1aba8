package cipherkey

import "testing"

func TestMethods_Order(t *testing.T) {
	want := []Method{MethodCaesar, MethodAES, MethodBase64, MethodBase32, MethodURL}

	got := Methods()
	if len(got) != len(want) {
		t.Fatalf("Methods() returned %d entries, want %d", len(got), len(want))
	}
	for i, m := range want {
		if got[i].ID != m {
			t.Errorf("Methods()[%d].ID = %q, want %q", i, got[i].ID, m)
		}
	}
}

func TestMethods_ReturnsCopy(t *testing.T) {
	got := Methods()
	got[0].Name = "changed"

	if Methods()[0].Name != "Caesar Cipher" {
		t.Error("modifying the result of Methods() should not change the catalog")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		method      Method
		name        string
		requiresKey bool
		keyKind     KeyKind
		placeholder string
	}{
		{MethodCaesar, "Caesar Cipher", true, KeyNumeric, "Shift (e.g. 3)"},
		{MethodAES, "AES", true, KeyText, "Secret Key"},
		{MethodBase64, "Base64", false, KeyNone, ""},
		{MethodBase32, "Base32", false, KeyNone, ""},
		{MethodURL, "URL Encoding", false, KeyNone, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			info, ok := Describe(tt.method)
			if !ok {
				t.Fatalf("Describe(%q) not found", tt.method)
			}
			if info.Name != tt.name {
				t.Errorf("Name = %q, want %q", info.Name, tt.name)
			}
			if info.RequiresKey != tt.requiresKey {
				t.Errorf("RequiresKey = %v, want %v", info.RequiresKey, tt.requiresKey)
			}
			if info.KeyKind != tt.keyKind {
				t.Errorf("KeyKind = %v, want %v", info.KeyKind, tt.keyKind)
			}
			if info.KeyPlaceholder != tt.placeholder {
				t.Errorf("KeyPlaceholder = %q, want %q", info.KeyPlaceholder, tt.placeholder)
			}
		})
	}
}

func TestIsValidMethod(t *testing.T) {
	tests := []struct {
		method Method
		want   bool
	}{
		{MethodCaesar, true},
		{MethodAES, true},
		{MethodBase64, true},
		{MethodBase32, true},
		{MethodURL, true},
		{"rot13", false},
		{"AES", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidMethod(tt.method); got != tt.want {
			t.Errorf("IsValidMethod(%q) = %v, want %v", tt.method, got, tt.want)
		}
	}
}

func TestResolve_FallsBackToFirstEntry(t *testing.T) {
	for _, id := range []string{"", "rot13", "Base64"} {
		if got := Resolve(id); got.ID != MethodCaesar {
			t.Errorf("Resolve(%q).ID = %q, want %q", id, got.ID, MethodCaesar)
		}
	}

	if got := ParseMethod("url"); got != MethodURL {
		t.Errorf("ParseMethod(url) = %q, want %q", got, MethodURL)
	}
}

func TestKeyKind_String(t *testing.T) {
	tests := []struct {
		kind KeyKind
		want string
	}{
		{KeyNone, "none"},
		{KeyNumeric, "number"},
		{KeyText, "text"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("KeyKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestDirection(t *testing.T) {
	if Encrypt.String() != "encrypt" || Decrypt.String() != "decrypt" {
		t.Errorf("String() = %q/%q", Encrypt, Decrypt)
	}
	if Encrypt.Reverse() != Decrypt || Decrypt.Reverse() != Encrypt {
		t.Error("Reverse() should swap directions")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{in: "encrypt", want: Encrypt},
		{in: "encode", want: Encrypt},
		{in: " Decrypt ", want: Decrypt},
		{in: "DECODE", want: Decrypt},
		{in: "sideways", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
