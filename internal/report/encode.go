package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// cborMode encodes with Core Deterministic Encoding (RFC 8949 §4.2) so
// the same container always produces identical bytes.
var cborMode cbor.EncMode

func init() {
	var err error
	cborMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("report: CBOR encoder initialization failed: " + err.Error())
	}
}

func renderJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding JSON report: %w", err)
	}
	return nil
}

func renderCBOR(w io.Writer, r Report) error {
	data, err := cborMode.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding CBOR report: %w", err)
	}
	_, err = w.Write(data)
	return err
}
