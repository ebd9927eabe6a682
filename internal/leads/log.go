package leads

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mahiganga/marketplace-backend/internal/models"
)

// Header is the fixed first line of the lead log. It is written exactly once,
// when the file is first created.
const Header = "SellerName,PhoneNumber,Email,Location,VehicleCategory,BrandModel,Year,Kilometers,Condition,ExpectedPrice,Comments"

// Log appends sell-request leads to a CSV file, one always-quoted row per
// submission. Leads are write-only: there is no read path.
type Log struct {
	path string
	mu   sync.Mutex
}

func NewLog(path string) *Log {
	return &Log{path: path}
}

// Append serializes the lead in fixed column order and appends it, creating
// the file with the header line if it does not exist yet.
func (l *Log) Append(req models.SellRequest) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, statErr := os.Stat(l.path)
	newFile := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open lead log: %w", err)
	}
	defer f.Close()

	if newFile {
		if _, err := f.WriteString(Header + "\n"); err != nil {
			return fmt.Errorf("write lead log header: %w", err)
		}
	}
	if _, err := f.WriteString(formatRow(req) + "\n"); err != nil {
		return fmt.Errorf("append lead: %w", err)
	}
	return nil
}

// formatRow quotes every field. Embedded double quotes are doubled so a quote
// inside a field cannot break the row.
func formatRow(req models.SellRequest) string {
	fields := []string{
		req.SellerName,
		req.SellerPhone,
		req.SellerEmail,
		req.SellerLocation,
		req.SellCategory,
		req.SellBrand,
		req.SellYear,
		req.SellKM,
		req.SellCondition,
		req.ExpectedPrice,
		req.AdditionalComments,
	}
	quoted := make([]string, len(fields))
	for i, v := range fields {
		quoted[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
