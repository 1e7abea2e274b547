package rsarecover

import (
	"bytes"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ChallengeParser defines the interface for parsing challenges from
// various sources.
type ChallengeParser interface {
	// ParseChallenges parses challenges from a source and returns them.
	ParseChallenges(source string) ([]*Challenge, error)
}

// JSONParser parses challenges from JSON files.
type JSONParser struct {
	EField string // field name for the public exponent (default: "e")
	NField string // field name for the modulus (default: "n")
	CField string // field name for the ciphertext (default: "c")
}

// ParseChallenges parses challenges from a JSON file.
//
// Expected format, either a single object or an array:
//
//	[
//	  {"e": "65537", "n": "0x...", "c": "..."},
//	  {"e": "65537", "n": "...", "c": "..."}
//	]
func (p *JSONParser) ParseChallenges(jsonFile string) ([]*Challenge, error) {
	data, err := os.ReadFile(jsonFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}

	// Preserve large numbers as json.Number instead of float64.
	var items []map[string]interface{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&items); err != nil {
		// Fall back to a single object
		var item map[string]interface{}
		decoder = json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&item); err != nil {
			return nil, errors.Wrap(err, "failed to parse JSON")
		}
		items = append(items, item)
	}

	eField, nField, cField := p.EField, p.NField, p.CField
	if eField == "" {
		eField = "e"
	}
	if nField == "" {
		nField = "n"
	}
	if cField == "" {
		cField = "c"
	}

	challenges := make([]*Challenge, 0, len(items))
	for _, item := range items {
		ch := &Challenge{}

		eVal, ok := item[eField]
		if !ok {
			return nil, errors.Errorf("missing %s field", eField)
		}
		e, err := parseBigInt(eVal)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse e")
		}
		ch.Key.E = e

		nVal, ok := item[nField]
		if !ok {
			return nil, errors.Errorf("missing %s field", nField)
		}
		n, err := parseBigInt(nVal)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse n")
		}
		ch.Key.N = n

		cVal, ok := item[cField]
		if !ok {
			return nil, errors.Errorf("missing %s field", cField)
		}
		c, err := parseBigInt(cVal)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse c")
		}
		ch.C = c

		challenges = append(challenges, ch)
	}

	return challenges, nil
}

// CSVParser parses challenges from CSV files.
type CSVParser struct {
	ECol string // column name for the public exponent (default: "e")
	NCol string // column name for the modulus (default: "n")
	CCol string // column name for the ciphertext (default: "c")
}

// ParseChallenges parses challenges from a CSV file with a header row.
func (p *CSVParser) ParseChallenges(csvFile string) ([]*Challenge, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}

	eCol, nCol, cCol := p.ECol, p.NCol, p.CCol
	if eCol == "" {
		eCol = "e"
	}
	if nCol == "" {
		nCol = "n"
	}
	if cCol == "" {
		cCol = "c"
	}

	eIdx, nIdx, cIdx := -1, -1, -1
	for i, col := range header {
		switch col {
		case eCol:
			eIdx = i
		case nCol:
			nIdx = i
		case cCol:
			cIdx = i
		}
	}
	if eIdx == -1 || nIdx == -1 || cIdx == -1 {
		return nil, errors.New("missing required columns: e, n or c")
	}

	var challenges []*Challenge
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read record")
		}
		if len(record) <= eIdx || len(record) <= nIdx || len(record) <= cIdx {
			return nil, errors.New("column index out of range")
		}

		ch := &Challenge{}
		if ch.Key.E, err = parseBigInt(record[eIdx]); err != nil {
			return nil, errors.Wrap(err, "failed to parse e")
		}
		if ch.Key.N, err = parseBigInt(record[nIdx]); err != nil {
			return nil, errors.Wrap(err, "failed to parse n")
		}
		if ch.C, err = parseBigInt(record[cIdx]); err != nil {
			return nil, errors.Wrap(err, "failed to parse c")
		}
		challenges = append(challenges, ch)
	}

	return challenges, nil
}

// parseBigInt parses a big integer from various formats (hex string
// with 0x prefix, decimal string, number).
func parseBigInt(val interface{}) (*big.Int, error) {
	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			s = s[2:]
			if len(s)%2 == 1 {
				s = "0" + s
			}
			b, err := hex.DecodeString(s)
			if err != nil {
				return nil, errors.Errorf("invalid hex number: %s", v)
			}
			return new(big.Int).SetBytes(b), nil
		}
		z := new(big.Int)
		if _, ok := z.SetString(s, 10); !ok {
			return nil, errors.Errorf("invalid number format: %s", v)
		}
		return z, nil

	case json.Number:
		z := new(big.Int)
		if _, ok := z.SetString(string(v), 10); !ok {
			return nil, errors.Errorf("invalid number format: %s", v)
		}
		return z, nil

	case float64:
		z := new(big.Int)
		if _, ok := z.SetString(fmt.Sprintf("%.0f", v), 10); !ok {
			return nil, errors.Errorf("invalid number format: %v", v)
		}
		return z, nil

	case int64:
		return big.NewInt(v), nil

	case int:
		return big.NewInt(int64(v)), nil

	default:
		return nil, errors.Errorf("unsupported type: %T", val)
	}
}
