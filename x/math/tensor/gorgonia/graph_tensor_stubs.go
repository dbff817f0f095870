package gorgonia

import "github.com/itohio/EasyRobot/x/math/tensor/types"

// This file contains stub implementations for operations not yet implemented
// for GraphTensor. These will be implemented as needed.

// Manipulation operations
func (gt *GraphTensor) Slice(dst types.Tensor, axis, start, end int) types.Tensor {
	panic("gorgonia.GraphTensor.Slice: not yet implemented")
}

func (gt *GraphTensor) Permute(dst types.Tensor, dims []int) types.Tensor {
	panic("gorgonia.GraphTensor.Permute: not yet implemented")
}

func (gt *GraphTensor) BroadcastTo(dst types.Tensor, shape types.Shape) types.Tensor {
	panic("gorgonia.GraphTensor.BroadcastTo: not yet implemented")
}

func (gt *GraphTensor) FillFunc(dst types.Tensor, fn func() float64) types.Tensor {
	panic("gorgonia.GraphTensor.FillFunc: not yet implemented")
}

func (gt *GraphTensor) Pad(dst types.Tensor, padding []int, value float64) types.Tensor {
	panic("gorgonia.GraphTensor.Pad: not yet implemented")
}

func (gt *GraphTensor) Unpad(dst types.Tensor, padding []int) types.Tensor {
	panic("gorgonia.GraphTensor.Unpad: not yet implemented")
}

// Comparison operations
func (gt *GraphTensor) Equal(dst types.Tensor, other types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.Equal: not yet implemented")
}

func (gt *GraphTensor) Greater(dst types.Tensor, other types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.Greater: not yet implemented")
}

func (gt *GraphTensor) Less(dst types.Tensor, other types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.Less: not yet implemented")
}

func (gt *GraphTensor) NotEqual(dst types.Tensor, other types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.NotEqual: not yet implemented")
}

func (gt *GraphTensor) GreaterEqual(dst types.Tensor, other types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.GreaterEqual: not yet implemented")
}

func (gt *GraphTensor) LessEqual(dst types.Tensor, other types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.LessEqual: not yet implemented")
}

func (gt *GraphTensor) EqualScalar(dst types.Tensor, value float64) types.Tensor {
	panic("gorgonia.GraphTensor.EqualScalar: not yet implemented")
}

func (gt *GraphTensor) NotEqualScalar(dst types.Tensor, value float64) types.Tensor {
	panic("gorgonia.GraphTensor.NotEqualScalar: not yet implemented")
}

func (gt *GraphTensor) GreaterScalar(dst types.Tensor, value float64) types.Tensor {
	panic("gorgonia.GraphTensor.GreaterScalar: not yet implemented")
}

func (gt *GraphTensor) LessScalar(dst types.Tensor, value float64) types.Tensor {
	panic("gorgonia.GraphTensor.LessScalar: not yet implemented")
}

func (gt *GraphTensor) GreaterEqualScalar(dst types.Tensor, value float64) types.Tensor {
	panic("gorgonia.GraphTensor.GreaterEqualScalar: not yet implemented")
}

func (gt *GraphTensor) LessEqualScalar(dst types.Tensor, value float64) types.Tensor {
	panic("gorgonia.GraphTensor.LessEqualScalar: not yet implemented")
}

func (gt *GraphTensor) Where(condition, ifTrue, dst types.Tensor, ifFalse types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.Where: not yet implemented")
}

// Unary operations
func (gt *GraphTensor) Sign(dst types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.Sign: not yet implemented")
}

func (gt *GraphTensor) Cos(dst types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.Cos: not yet implemented")
}

func (gt *GraphTensor) Sin(dst types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.Sin: not yet implemented")
}

// Reduction operations
func (gt *GraphTensor) ReduceSum(dst types.Tensor, dims []int) types.Tensor {
	return gt.Sum(dst, dims)
}

func (gt *GraphTensor) Mean(dst types.Tensor, dims []int) types.Tensor {
	panic("gorgonia.GraphTensor.Mean: not yet implemented")
}

func (gt *GraphTensor) ReduceMean(dst types.Tensor, dims []int) types.Tensor {
	return gt.Mean(dst, dims)
}

func (gt *GraphTensor) Max(dst types.Tensor, dims []int) types.Tensor {
	panic("gorgonia.GraphTensor.Max: not yet implemented")
}

func (gt *GraphTensor) ReduceMax(dst types.Tensor, dims []int) types.Tensor {
	return gt.Max(dst, dims)
}

func (gt *GraphTensor) Min(dst types.Tensor, dims []int) types.Tensor {
	panic("gorgonia.GraphTensor.Min: not yet implemented")
}

func (gt *GraphTensor) ReduceMin(dst types.Tensor, dims []int) types.Tensor {
	return gt.Min(dst, dims)
}

func (gt *GraphTensor) ArgMax(dst types.Tensor, dim int) types.Tensor {
	panic("gorgonia.GraphTensor.ArgMax: not yet implemented")
}

func (gt *GraphTensor) ArgMin(dst types.Tensor, dim int) types.Tensor {
	panic("gorgonia.GraphTensor.ArgMin: not yet implemented")
}

// Linear algebra
func (gt *GraphTensor) MatMulTransposed(dst types.Tensor, other types.Tensor, transA, transB bool) types.Tensor {
	panic("gorgonia.GraphTensor.MatMulTransposed: not yet implemented")
}

func (gt *GraphTensor) MatVecMulTransposed(a types.Tensor, x, dst types.Tensor, alpha, beta float64) types.Tensor {
	panic("gorgonia.GraphTensor.MatVecMulTransposed: not yet implemented")
}

func (gt *GraphTensor) Dot(other types.Tensor) float64 {
	panic("gorgonia.GraphTensor.Dot: not yet implemented")
}

func (gt *GraphTensor) Tensordot(other types.Tensor) float64 {
	panic("gorgonia.GraphTensor.Tensordot: not yet implemented")
}

func (gt *GraphTensor) Norm(p int) float64 {
	panic("gorgonia.GraphTensor.Norm: not yet implemented")
}

func (gt *GraphTensor) L2Normalize(dst types.Tensor, dim int) types.Tensor {
	panic("gorgonia.GraphTensor.L2Normalize: not yet implemented")
}

func (gt *GraphTensor) Normalize(dst types.Tensor, dim int) types.Tensor {
	panic("gorgonia.GraphTensor.Normalize: not yet implemented")
}

func (gt *GraphTensor) AddScaled(dst types.Tensor, other types.Tensor, alpha float64) types.Tensor {
	panic("gorgonia.GraphTensor.AddScaled: not yet implemented")
}

func (gt *GraphTensor) ScatterAdd(dst types.Tensor, indices, updates types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.ScatterAdd: not yet implemented")
}

// Normalizations
func (gt *GraphTensor) BatchNormForward(gamma, beta, dst types.Tensor, epsilon float64) types.Tensor {
	panic("gorgonia.GraphTensor.BatchNormForward: not yet implemented")
}

func (gt *GraphTensor) BatchNormGrad(dout, input, gamma, runningMean, runningVar, dstDx types.Tensor, epsilon float64) (types.Tensor, types.Tensor, types.Tensor) {
	panic("gorgonia.GraphTensor.BatchNormGrad: not yet implemented")
}

func (gt *GraphTensor) LayerNormForward(gamma, beta, dst types.Tensor, epsilon float64) types.Tensor {
	panic("gorgonia.GraphTensor.LayerNormForward: not yet implemented")
}

func (gt *GraphTensor) LayerNormGrad(dout, input, gamma, mean, var_, dstDx types.Tensor, epsilon float64) (types.Tensor, types.Tensor, types.Tensor) {
	panic("gorgonia.GraphTensor.LayerNormGrad: not yet implemented")
}

func (gt *GraphTensor) RMSNormForward(gamma, dst types.Tensor, epsilon float64) types.Tensor {
	panic("gorgonia.GraphTensor.RMSNormForward: not yet implemented")
}

func (gt *GraphTensor) RMSNormGrad(dout, input, gamma, rms, dstDx types.Tensor, epsilon float64) (types.Tensor, types.Tensor) {
	panic("gorgonia.GraphTensor.RMSNormGrad: not yet implemented")
}

func (gt *GraphTensor) InstanceNorm2D(gamma, beta, dst types.Tensor, epsilon float64) types.Tensor {
	panic("gorgonia.GraphTensor.InstanceNorm2D: not yet implemented")
}

func (gt *GraphTensor) InstanceNorm2DGrad(dout, input, gamma, mean, var_, dstDx types.Tensor, epsilon float64) (types.Tensor, types.Tensor, types.Tensor) {
	panic("gorgonia.GraphTensor.InstanceNorm2DGrad: not yet implemented")
}

func (gt *GraphTensor) GroupNormForward(gamma, beta, dst types.Tensor, numGroups int, epsilon float64) types.Tensor {
	panic("gorgonia.GraphTensor.GroupNormForward: not yet implemented")
}

func (gt *GraphTensor) GroupNormGrad(dout, input, gamma, mean, var_, dstDx types.Tensor, numGroups int, epsilon float64) (types.Tensor, types.Tensor, types.Tensor) {
	panic("gorgonia.GraphTensor.GroupNormGrad: not yet implemented")
}

// Activations
func (gt *GraphTensor) ReLU6(dst types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.ReLU6: not yet implemented")
}

func (gt *GraphTensor) ELU(dst types.Tensor, alpha float64) types.Tensor {
	panic("gorgonia.GraphTensor.ELU: not yet implemented")
}

func (gt *GraphTensor) Softplus(dst types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.Softplus: not yet implemented")
}

func (gt *GraphTensor) Swish(dst types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.Swish: not yet implemented")
}

func (gt *GraphTensor) GELU(dst types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.GELU: not yet implemented")
}

func (gt *GraphTensor) ReLUGrad(grad, dst types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.ReLUGrad: not yet implemented")
}

func (gt *GraphTensor) SigmoidGrad(grad, dst types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.SigmoidGrad: not yet implemented")
}

func (gt *GraphTensor) TanhGrad(grad, dst types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.TanhGrad: not yet implemented")
}

func (gt *GraphTensor) SoftmaxGrad(grad, dst types.Tensor, dim int) types.Tensor {
	panic("gorgonia.GraphTensor.SoftmaxGrad: not yet implemented")
}

// Convolutions
func (gt *GraphTensor) Conv1D(dst, kernel, bias types.Tensor, stride, padding int) types.Tensor {
	panic("gorgonia.GraphTensor.Conv1D: not yet implemented")
}

func (gt *GraphTensor) Conv2DTransposed(dst, kernel, bias types.Tensor, stride, padding []int) types.Tensor {
	panic("gorgonia.GraphTensor.Conv2DTransposed: not yet implemented")
}

func (gt *GraphTensor) Conv2DKernelGrad(dst, input, gradOutput types.Tensor, stride, padding []int) types.Tensor {
	panic("gorgonia.GraphTensor.Conv2DKernelGrad: not yet implemented")
}

func (gt *GraphTensor) Conv1DKernelGrad(dst, input, gradOutput types.Tensor, stride, padding int) types.Tensor {
	panic("gorgonia.GraphTensor.Conv1DKernelGrad: not yet implemented")
}

func (gt *GraphTensor) Im2Col(dst types.Tensor, kernelSize, stride, padding []int) types.Tensor {
	panic("gorgonia.GraphTensor.Im2Col: not yet implemented")
}

func (gt *GraphTensor) Col2Im(dst types.Tensor, outputSize, kernelSize, stride, padding []int) types.Tensor {
	panic("gorgonia.GraphTensor.Col2Im: not yet implemented")
}

// Pooling
func (gt *GraphTensor) MaxPool2DWithIndices(dst, indices types.Tensor, kernelSize, stride, padding []int) (types.Tensor, types.Tensor) {
	panic("gorgonia.GraphTensor.MaxPool2DWithIndices: not yet implemented")
}

func (gt *GraphTensor) MaxPool2DBackward(dst, input, gradOutput types.Tensor, kernelSize, stride, padding []int) types.Tensor {
	panic("gorgonia.GraphTensor.MaxPool2DBackward: not yet implemented")
}

func (gt *GraphTensor) AvgPool2D(dst types.Tensor, kernelSize, stride, padding []int) types.Tensor {
	panic("gorgonia.GraphTensor.AvgPool2D: not yet implemented")
}

func (gt *GraphTensor) AvgPool2DBackward(dst, gradOutput types.Tensor, kernelSize, stride, padding []int) types.Tensor {
	panic("gorgonia.GraphTensor.AvgPool2DBackward: not yet implemented")
}

func (gt *GraphTensor) GlobalAvgPool2D(dst types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.GlobalAvgPool2D: not yet implemented")
}

func (gt *GraphTensor) AdaptiveAvgPool2D(dst types.Tensor, outputSize []int) types.Tensor {
	panic("gorgonia.GraphTensor.AdaptiveAvgPool2D: not yet implemented")
}

// Dropout
func (gt *GraphTensor) DropoutForward(mask, dst types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.DropoutForward: not yet implemented")
}

func (gt *GraphTensor) DropoutMask(p, scale float64, rng types.RNG) types.Tensor {
	panic("gorgonia.GraphTensor.DropoutMask: not yet implemented")
}

func (gt *GraphTensor) DropoutBackward(grad, mask, dst types.Tensor) types.Tensor {
	panic("gorgonia.GraphTensor.DropoutBackward: not yet implemented")
}
