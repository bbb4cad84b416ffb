package report

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("report: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// document is the CBOR form of a Comparison. Ratios are included so
// consumers do not need to recompute them.
type document struct {
	Comparison
	MemoryRatio float64 `cbor:"memory_ratio"`
	TimeRatio   float64 `cbor:"time_ratio"`
}

// MarshalCBOR encodes c deterministically.
func MarshalCBOR(c Comparison) ([]byte, error) {
	return cborEncMode.Marshal(document{
		Comparison:  c,
		MemoryRatio: c.MemoryRatio(),
		TimeRatio:   c.TimeRatio(),
	})
}

func UnmarshalCBOR(data []byte) (Comparison, error) {
	var d document
	if err := cbor.Unmarshal(data, &d); err != nil {
		return Comparison{}, fmt.Errorf("report: unmarshal comparison: %w", err)
	}
	return d.Comparison, nil
}

func WriteCBOR(w io.Writer, c Comparison) error {
	data, err := MarshalCBOR(c)
	if err != nil {
		return fmt.Errorf("report: marshal comparison: %w", err)
	}
	_, err = w.Write(data)
	return err
}
