package ports

import (
	"effsample/domain/core"
	"effsample/domain/sample"
)

// VariableReader loads named observation sequences from an external
// data source (xlsx, csv). Column order is preserved.
type VariableReader interface {
	ReadVariables() ([]core.VariableKey, map[core.VariableKey]sample.Sequence, error)
}
