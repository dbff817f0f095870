package mat

import matTypes "github.com/itohio/EasyRobot/pkg/core/math/mat/types"

// Re-export result types for backward compatibility with existing code/tests.
type QRResult = matTypes.QRResult
type SVDResult = matTypes.SVDResult
