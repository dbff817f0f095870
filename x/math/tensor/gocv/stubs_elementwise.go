package gocv

import "github.com/itohio/EasyRobot/x/math/tensor/types"

func (t Tensor) Add(dst types.Tensor, other types.Tensor) types.Tensor {
	panicUnsupported("Add")
	return nil
}

func (t Tensor) Subtract(dst types.Tensor, other types.Tensor) types.Tensor {
	panicUnsupported("Subtract")
	return nil
}

func (t Tensor) Multiply(dst types.Tensor, other types.Tensor) types.Tensor {
	panicUnsupported("Multiply")
	return nil
}

func (t Tensor) Divide(dst types.Tensor, other types.Tensor) types.Tensor {
	panicUnsupported("Divide")
	return nil
}

func (t Tensor) ScalarMul(dst types.Tensor, scalar float64) types.Tensor {
	panicUnsupported("ScalarMul")
	return nil
}

func (t Tensor) AddScalar(dst types.Tensor, scalar float64) types.Tensor {
	panicUnsupported("AddScalar")
	return nil
}

func (t Tensor) SubScalar(dst types.Tensor, scalar float64) types.Tensor {
	panicUnsupported("SubScalar")
	return nil
}

func (t Tensor) MulScalar(dst types.Tensor, scalar float64) types.Tensor {
	panicUnsupported("MulScalar")
	return nil
}

func (t Tensor) DivScalar(dst types.Tensor, scalar float64) types.Tensor {
	panicUnsupported("DivScalar")
	return nil
}

func (t Tensor) Square(dst types.Tensor) types.Tensor {
	panicUnsupported("Square")
	return nil
}

func (t Tensor) Sqrt(dst types.Tensor) types.Tensor {
	panicUnsupported("Sqrt")
	return nil
}

func (t Tensor) Exp(dst types.Tensor) types.Tensor {
	panicUnsupported("Exp")
	return nil
}

func (t Tensor) Log(dst types.Tensor) types.Tensor {
	panicUnsupported("Log")
	return nil
}

func (t Tensor) Pow(dst types.Tensor, power float64) types.Tensor {
	panicUnsupported("Pow")
	return nil
}

func (t Tensor) Abs(dst types.Tensor) types.Tensor {
	panicUnsupported("Abs")
	return nil
}

func (t Tensor) Sign(dst types.Tensor) types.Tensor {
	panicUnsupported("Sign")
	return nil
}

func (t Tensor) Cos(dst types.Tensor) types.Tensor {
	panicUnsupported("Cos")
	return nil
}

func (t Tensor) Sin(dst types.Tensor) types.Tensor {
	panicUnsupported("Sin")
	return nil
}

func (t Tensor) Negative(dst types.Tensor) types.Tensor {
	panicUnsupported("Negative")
	return nil
}

func (t Tensor) Equal(dst types.Tensor, other types.Tensor) types.Tensor {
	panicUnsupported("Equal")
	return nil
}

func (t Tensor) Greater(dst types.Tensor, other types.Tensor) types.Tensor {
	panicUnsupported("Greater")
	return nil
}

func (t Tensor) Less(dst types.Tensor, other types.Tensor) types.Tensor {
	panicUnsupported("Less")
	return nil
}

func (t Tensor) NotEqual(dst types.Tensor, other types.Tensor) types.Tensor {
	panicUnsupported("NotEqual")
	return nil
}

func (t Tensor) GreaterEqual(dst types.Tensor, other types.Tensor) types.Tensor {
	panicUnsupported("GreaterEqual")
	return nil
}

func (t Tensor) LessEqual(dst types.Tensor, other types.Tensor) types.Tensor {
	panicUnsupported("LessEqual")
	return nil
}

func (t Tensor) EqualScalar(dst types.Tensor, scalar float64) types.Tensor {
	panicUnsupported("EqualScalar")
	return nil
}

func (t Tensor) NotEqualScalar(dst types.Tensor, scalar float64) types.Tensor {
	panicUnsupported("NotEqualScalar")
	return nil
}

func (t Tensor) GreaterScalar(dst types.Tensor, scalar float64) types.Tensor {
	panicUnsupported("GreaterScalar")
	return nil
}

func (t Tensor) LessScalar(dst types.Tensor, scalar float64) types.Tensor {
	panicUnsupported("LessScalar")
	return nil
}

func (t Tensor) GreaterEqualScalar(dst types.Tensor, scalar float64) types.Tensor {
	panicUnsupported("GreaterEqualScalar")
	return nil
}

func (t Tensor) LessEqualScalar(dst types.Tensor, scalar float64) types.Tensor {
	panicUnsupported("LessEqualScalar")
	return nil
}

func (t Tensor) Where(dst types.Tensor, condition, a, b types.Tensor) types.Tensor {
	panicUnsupported("Where")
	return nil
}
