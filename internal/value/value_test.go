package value

import (
	"testing"
)

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain word", "foo", true},
		{"with digits", "foo123", true},
		{"with underscore", "foo_bar", true},
		{"leading underscore, has alpha", "_foo", true},
		{"all digits", "123", false},
		{"all underscores", "___", false},
		{"empty", "", false},
		{"reserved func", "func", false},
		{"reserved mut", "mut", false},
		{"reserved loop form", "while", false},
		{"not reserved keyword-ish", "type", true},
		{"contains space", "foo bar", false},
		{"contains dash", "foo-bar", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidIdentifier(tt.input); got != tt.want {
				t.Errorf("IsValidIdentifier(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewTypeIdPrimitive(t *testing.T) {
	tests := []struct {
		name      string
		primitive bool
	}{
		{"int", true},
		{"float", true},
		{"bool", true},
		{"char", true},
		{"string", true},
		{"Point", false},
	}
	for _, tt := range tests {
		got := NewTypeId(tt.name)
		if got.Primitive != tt.primitive {
			t.Errorf("NewTypeId(%q).Primitive = %v, want %v", tt.name, got.Primitive, tt.primitive)
		}
	}
}

func TestTypeDecFieldIndex(t *testing.T) {
	td := NewTypeDec("Point", []DecArg{
		NewDecArg("x", NewTypeId("int")),
		NewDecArg("y", NewTypeId("int")),
	})

	if idx, ok := td.FieldIndex("y"); !ok || idx != 1 {
		t.Errorf("FieldIndex(y) = (%d, %v), want (1, true)", idx, ok)
	}
	if _, ok := td.FieldIndex("z"); ok {
		t.Errorf("FieldIndex(z) found, want not found")
	}
}

func TestTypeDecValidateRejectsDuplicateFields(t *testing.T) {
	td := NewTypeDec("Bad", []DecArg{
		NewDecArg("x", NewTypeId("int")),
		NewDecArg("x", NewTypeId("int")),
	})
	if err := td.Validate(); err == nil {
		t.Fatal("expected an error for duplicate field names")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	if got := DecodeInt(EncodeInt(-42)); got != -42 {
		t.Errorf("int round-trip = %d, want -42", got)
	}
	if got := DecodeFloat(EncodeFloat(3.5)); got != 3.5 {
		t.Errorf("float round-trip = %v, want 3.5", got)
	}
	if got := DecodeBool(EncodeBool(true)); !got {
		t.Error("bool round-trip = false, want true")
	}
	if got := DecodeChar(EncodeChar('λ')); got != 'λ' {
		t.Errorf("char round-trip = %q, want 'λ'", got)
	}
}

func TestEncodeIntLittleEndian(t *testing.T) {
	got := EncodeInt(15)
	want := []byte{15, 0, 0, 0, 0, 0, 0, 0}
	if len(got) != len(want) {
		t.Fatalf("EncodeInt(15) length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("EncodeInt(15) = %v, want %v", got, want)
		}
	}
}

func TestObjectInstanceGetFieldPrimitive(t *testing.T) {
	typ := NewTypeDec("Point", []DecArg{
		NewDecArg("x", NewTypeId("int")),
		NewDecArg("y", NewTypeId("int")),
	})
	data := append(EncodeInt(15), EncodeInt(14)...)
	fields := map[string]FieldSpan{
		"x": {Offset: 0, Size: SizeInt},
		"y": {Offset: SizeInt, Size: SizeInt},
	}
	inst := NewRecordInstance(typ, data, fields, []string{"x", "y"})

	x, err := inst.GetField("x")
	if err != nil {
		t.Fatalf("GetField(x) error: %v", err)
	}
	if x.TypeName() != "int" {
		t.Errorf("GetField(x).TypeName() = %q, want int", x.TypeName())
	}
	if got := DecodeInt(x.Data()); got != 15 {
		t.Errorf("GetField(x) value = %d, want 15", got)
	}

	if _, err := inst.GetField("z"); err == nil {
		t.Error("GetField(z) should fail: no such field")
	}
}

func TestObjectInstanceGetFieldOnPrimitiveReceiver(t *testing.T) {
	inst := NewPrimitiveInstance(PrimitiveInt, EncodeInt(12))
	if _, err := inst.GetField("anything"); err == nil {
		t.Error("GetField on a primitive receiver should fail")
	}
}

func TestObjectInstanceEqualIsStructural(t *testing.T) {
	a := NewPrimitiveInstance(PrimitiveInt, EncodeInt(42))
	b := NewPrimitiveInstance(PrimitiveInt, EncodeInt(42))
	if a == b {
		t.Fatal("test setup: expected distinct pointers")
	}
	if !a.Equal(b) {
		t.Error("structurally identical instances should be Equal")
	}

	c := NewPrimitiveInstance(PrimitiveInt, EncodeInt(43))
	if a.Equal(c) {
		t.Error("instances with different bytes should not be Equal")
	}
}

func TestVarRebindRequiresMutableCheckByCaller(t *testing.T) {
	v := NewVar("x", NewPrimitiveInstance(PrimitiveInt, EncodeInt(1)), false)
	if v.Mutable() {
		t.Fatal("expected immutable var")
	}
	v.Rebind(NewPrimitiveInstance(PrimitiveInt, EncodeInt(2)))
	if got := DecodeInt(v.Instance().Data()); got != 2 {
		t.Errorf("Rebind did not update instance, got %d", got)
	}
}
