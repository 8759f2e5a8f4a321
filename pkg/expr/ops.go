package expr

type UnaryOp string

const (
	OpNegate    UnaryOp = "~" // '~' so it is not confused with subtraction
	OpIncrement UnaryOp = "++"
)

type BinaryOp string

const (
	OpAdd      BinaryOp = "+"
	OpSubtract BinaryOp = "-"
	OpMultiply BinaryOp = "*"
	OpDivide   BinaryOp = "/"
	OpModulo   BinaryOp = "%"

	OpAssign         BinaryOp = "="
	OpAddAssign      BinaryOp = "+="
	OpSubtractAssign BinaryOp = "-="
	OpMultiplyAssign BinaryOp = "*="
	OpDivideAssign   BinaryOp = "/="
	OpModuloAssign   BinaryOp = "%="
)

var (
	unaryOps = map[string]UnaryOp{
		string(OpNegate):    OpNegate,
		string(OpIncrement): OpIncrement,
	}
	binaryOps = map[string]BinaryOp{
		string(OpAdd):            OpAdd,
		string(OpSubtract):       OpSubtract,
		string(OpMultiply):       OpMultiply,
		string(OpDivide):         OpDivide,
		string(OpModulo):         OpModulo,
		string(OpAssign):         OpAssign,
		string(OpAddAssign):      OpAddAssign,
		string(OpSubtractAssign): OpSubtractAssign,
		string(OpMultiplyAssign): OpMultiplyAssign,
		string(OpDivideAssign):   OpDivideAssign,
		string(OpModuloAssign):   OpModuloAssign,
	}
	compound = map[BinaryOp]BinaryOp{
		OpAddAssign:      OpAdd,
		OpSubtractAssign: OpSubtract,
		OpMultiplyAssign: OpMultiply,
		OpDivideAssign:   OpDivide,
		OpModuloAssign:   OpModulo,
	}
)

// IsAssignment reports whether op stores into its left operand
func (op BinaryOp) IsAssignment() bool {
	if op == OpAssign {
		return true
	}
	_, ok := compound[op]
	return ok
}

// arithmetic returns the operator a compound assignment applies, or
// OpAssign for plain assignment
func (op BinaryOp) arithmetic() BinaryOp {
	if base, ok := compound[op]; ok {
		return base
	}
	return op
}
