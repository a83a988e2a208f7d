package uuid4

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestUUID_ZeroValue(t *testing.T) {
	var u UUID
	for i, b := range u {
		if b != 0 {
			t.Errorf("byte %d of zero UUID = %#x", i, b)
		}
	}
	if !u.IsNil() {
		t.Error("zero UUID should be nil")
	}
}

func TestUUID_Equality(t *testing.T) {
	var zero1, zero2 UUID
	if zero1 != zero2 || !zero1.Equal(zero2) {
		t.Error("two zero UUIDs should be equal")
	}

	nonZero := UUID{1}
	if zero1 == nonZero || zero1.Equal(nonZero) {
		t.Error("zero and non-zero UUIDs should not be equal")
	}

	uuid1 := UUID{0x01, 0x02, 0x03}
	uuid2 := UUID{0x01, 0x02, 0x03}
	uuid3 := UUID{0x03, 0x02, 0x01}
	if !uuid1.Equal(uuid2) {
		t.Error("uuid1 should equal uuid2")
	}
	if uuid1.Equal(uuid3) {
		t.Error("uuid1 should not equal uuid3")
	}
}

func TestUUID_MapKey(t *testing.T) {
	m := map[UUID]int{testBytes: 1}
	if m[MustParse(testCanonical)] != 1 {
		t.Error("parsed UUID did not find its map entry")
	}
	if _, ok := m[Nil]; ok {
		t.Error("Nil found in map")
	}
}

func TestUUID_String(t *testing.T) {
	if got := testBytes.String(); got != testCanonical {
		t.Errorf("String() = %v, want %v", got, testCanonical)
	}
	if got := Nil.String(); got != "00000000-0000-0000-0000-000000000000" {
		t.Errorf("Nil.String() = %v", got)
	}

	// google/uuid formats identically
	for i := 0; i < 20; i++ {
		u := New()
		if got, want := u.String(), uuid.UUID(u).String(); got != want {
			t.Errorf("String() = %v, want %v", got, want)
		}
	}
}

func TestUUID_URN(t *testing.T) {
	want := "urn:uuid:" + testCanonical
	if got := testBytes.URN(); got != want {
		t.Errorf("URN() = %v, want %v", got, want)
	}
	if got := uuid.UUID(testBytes).URN(); got != want {
		t.Errorf("google/uuid URN() = %v, want %v", got, want)
	}
}

func TestUUID_Version(t *testing.T) {
	uuid := UUID{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if v := uuid.Version(); v != VersionRandom {
		t.Errorf("Version() = %v, want %v", v, VersionRandom)
	}
}

func TestUUID_Variant(t *testing.T) {
	// Create a UUID with RFC 4122 variant (10xx xxxx)
	uuid := UUID{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if v := uuid.Variant(); v != VariantRFC4122 {
		t.Errorf("Variant() = %v, want %v", v, VariantRFC4122)
	}
}

func TestUUID_Compare(t *testing.T) {
	uuid1 := UUID{0x01}
	uuid2 := UUID{0x02}
	uuid3 := UUID{0x01}

	if uuid1.Compare(uuid2) != -1 {
		t.Error("uuid1 should be less than uuid2")
	}
	if uuid2.Compare(uuid1) != 1 {
		t.Error("uuid2 should be greater than uuid1")
	}
	if uuid1.Compare(uuid3) != 0 {
		t.Error("uuid1 should be equal to uuid3")
	}
	if (UUID{15: 1}).Compare(UUID{15: 2}) != -1 {
		t.Error("last byte should be compared")
	}
}

func TestUUID_Bytes(t *testing.T) {
	b := testBytes.Bytes()
	if !bytes.Equal(b, testBytes[:]) {
		t.Error("Bytes() did not return correct byte slice")
	}
	b[0] = 0
	if testBytes[0] != 0x69 {
		t.Error("Bytes() aliases the UUID")
	}
}

func TestUUID_MarshalUnmarshalText(t *testing.T) {
	text, err := testBytes.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != testCanonical {
		t.Errorf("MarshalText() = %s, want %s", text, testCanonical)
	}

	var uuid2 UUID
	if err := uuid2.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if uuid2 != testBytes {
		t.Errorf("Marshal/Unmarshal mismatch: got %v, want %v", uuid2, testBytes)
	}

	var bad UUID
	if err := bad.UnmarshalText([]byte("not-a-uuid")); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("UnmarshalText() error = %v, want ErrInvalidFormat", err)
	}
}

func TestUUID_MarshalUnmarshalBinary(t *testing.T) {
	data, err := testBytes.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	if len(data) != 16 {
		t.Errorf("MarshalBinary() length = %d, want 16", len(data))
	}

	var uuid2 UUID
	if err := uuid2.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if uuid2 != testBytes {
		t.Errorf("Marshal/Unmarshal mismatch: got %v, want %v", uuid2, testBytes)
	}

	if err := uuid2.UnmarshalBinary(data[:15]); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("UnmarshalBinary(15 bytes) error = %v, want ErrInvalidLength", err)
	}
}

func TestUUID_JSON(t *testing.T) {
	type TestStruct struct {
		ID   UUID         `json:"id"`
		Tags map[UUID]int `json:"tags"`
	}

	ts := TestStruct{ID: testBytes, Tags: map[UUID]int{testBytes: 7}}

	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if !bytes.Contains(data, []byte(`"id":"`+testCanonical+`"`)) {
		t.Errorf("json.Marshal() = %s, want canonical id", data)
	}

	var ts2 TestStruct
	if err := json.Unmarshal(data, &ts2); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if ts.ID != ts2.ID || ts2.Tags[testBytes] != 7 {
		t.Errorf("JSON Marshal/Unmarshal mismatch: got %+v, want %+v", ts2, ts)
	}

	// Input may use any accepted form.
	var ts3 TestStruct
	if err := json.Unmarshal([]byte(`{"id":"urn:uuid:`+testCanonical+`"}`), &ts3); err != nil {
		t.Fatalf("json.Unmarshal(urn) error = %v", err)
	}
	if ts3.ID != testBytes {
		t.Errorf("json.Unmarshal(urn) = %v, want %v", ts3.ID, testBytes)
	}
}

func TestUUID_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    UUID
		wantErr bool
	}{
		{"string input", testCanonical, testBytes, false},
		{"byte slice input - 16 bytes", testBytes[:], testBytes, false},
		{"byte slice input - string format", []byte(testCanonical), testBytes, false},
		{"byte slice input - braced", []byte("{" + testCanonical + "}"), testBytes, false},
		{"nil input", nil, Nil, false},
		{"empty byte slice", []byte{}, Nil, false},
		{"invalid string", "xyz", Nil, true},
		{"invalid type", 123, Nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var uuid UUID
			err := uuid.Scan(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if uuid != tt.want {
				t.Errorf("Scan() = %v, want %v", uuid, tt.want)
			}
		})
	}
}

func TestUUID_Value(t *testing.T) {
	val, err := testBytes.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	str, ok := val.(string)
	if !ok {
		t.Fatalf("Value() returned non-string type: %T", val)
	}
	if str != testCanonical {
		t.Errorf("Value() = %v, want %v", str, testCanonical)
	}
}
