package leads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahiganga/marketplace-backend/internal/models"
)

func sampleLead() models.SellRequest {
	return models.SellRequest{
		SellerName:         "Jane Doe",
		SellerPhone:        "0712345678",
		SellerEmail:        "jane@example.com",
		SellerLocation:     "Dar es Salaam",
		SellCategory:       "Sedan",
		SellBrand:          "Toyota Corolla",
		SellYear:           "2015",
		SellKM:             "88000",
		SellCondition:      "Good",
		ExpectedPrice:      "12000",
		AdditionalComments: "Single owner",
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestAppendCreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sell_requests.csv")
	l := NewLog(path)

	require.NoError(t, l.Append(sampleLead()))

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t,
		`"Jane Doe","0712345678","jane@example.com","Dar es Salaam","Sedan","Toyota Corolla","2015","88000","Good","12000","Single owner"`,
		lines[1])
}

func TestHeaderWrittenExactlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sell_requests.csv")
	l := NewLog(path)

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Append(sampleLead()))
	}

	lines := readLines(t, path)
	require.Len(t, lines, 4)
	assert.Equal(t, Header, lines[0])
	for _, line := range lines[1:] {
		assert.NotEqual(t, Header, line)
	}
}

func TestAppendPreservesPriorRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sell_requests.csv")
	l := NewLog(path)

	first := sampleLead()
	require.NoError(t, l.Append(first))

	second := sampleLead()
	second.SellerName = "John Smith"
	require.NoError(t, l.Append(second))

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], `"Jane Doe"`)
	assert.Contains(t, lines[2], `"John Smith"`)
}

func TestEmbeddedQuotesAreDoubled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sell_requests.csv")
	l := NewLog(path)

	lead := sampleLead()
	lead.AdditionalComments = `so-called "mint" condition`
	require.NoError(t, l.Append(lead))

	lines := readLines(t, path)
	assert.Contains(t, lines[1], `"so-called ""mint"" condition"`)
}
