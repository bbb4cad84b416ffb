package opcode

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		op       Opcode
		operands []int
		expected []byte
	}{
		{OpInc, []int{}, []byte{byte(OpInc)}},
		{OpDone, []int{}, []byte{byte(OpDone)}},
		{OpAddi, []int{5}, []byte{byte(OpAddi), 5}},
		{OpSubi, []int{-1}, []byte{byte(OpSubi), 0xff}},
		{OpAddi, []int{300}, []byte{byte(OpAddi), 44}},
	}

	for _, tt := range tests {
		instruction := Make(tt.op, tt.operands...)

		if len(instruction) != len(tt.expected) {
			t.Errorf("instruction has wrong length. want=%d, got=%d",
				len(tt.expected), len(instruction))
			continue
		}

		for i, b := range tt.expected {
			if instruction[i] != tt.expected[i] {
				t.Errorf("wrong byte at pos %d. want=%d, got=%d",
					i, b, instruction[i])
			}
		}
	}
}

func TestLookup(t *testing.T) {
	def, err := Lookup(byte(OpSubi))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if def.Name != "OpSubi" || len(def.OperandWidths) != 1 {
		t.Errorf("wrong definition: %+v", def)
	}

	if _, err := Lookup(9); err == nil {
		t.Error("expected error for undefined opcode 9")
	}
}

func TestInstructionsString(t *testing.T) {
	ins := Concat(
		Make(OpInc),
		Make(OpAddi, 5),
		Make(OpSubi, -2),
		[]byte{7},
		Make(OpDone),
	)

	expected := `0000 OpInc
0001 OpAddi 5
0003 OpSubi -2
0005 ERROR: opcode 7 undefined
0006 OpDone
`

	if ins.String() != expected {
		t.Errorf("instructions wrongly formatted.\nwant=%q\ngot=%q",
			expected, ins.String())
	}
}

func TestInstructionsStringMissingOperand(t *testing.T) {
	ins := Instructions{byte(OpInc), byte(OpAddi)}

	expected := "0000 OpInc\n0001 OpAddi <missing operand>\n"
	if ins.String() != expected {
		t.Errorf("want=%q, got=%q", expected, ins.String())
	}
}

func TestOpcodeString(t *testing.T) {
	if OpDone.String() != "OpDone" {
		t.Errorf("want=OpDone, got=%s", OpDone.String())
	}
	if Opcode(42).String() != "Opcode(42)" {
		t.Errorf("want=Opcode(42), got=%s", Opcode(42).String())
	}
}
