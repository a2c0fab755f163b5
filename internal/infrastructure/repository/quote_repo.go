package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"product-vendor-go/internal/models"
	"product-vendor-go/internal/utils"

	log "github.com/sirupsen/logrus"
)

var header = []string{"at", "serial", "price", "offer", "confirmed"}

// CsvQuoteRepository appends buyer quotes to one CSV file per day under Dir.
type CsvQuoteRepository struct {
	Dir string
	mu  sync.Mutex
}

func NewCsvQuoteRepository(dir string) (*CsvQuoteRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &CsvQuoteRepository{Dir: dir}, nil
}

func (r *CsvQuoteRepository) FileName(at time.Time) string {
	return fmt.Sprintf("quotes_%s.csv", at.Format("2006_01_02"))
}

func (r *CsvQuoteRepository) Save(quote models.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	filePath := filepath.Join(r.Dir, r.FileName(quote.At))
	_, statErr := os.Stat(filePath)
	fresh := errors.Is(statErr, os.ErrNotExist)

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if fresh {
		if err := writer.Write(header); err != nil {
			return err
		}
	}
	if err := writer.Write([]string{
		quote.At.UTC().Format(time.RFC3339Nano),
		utils.FormatInt32(quote.Serial),
		utils.FormatInt32(quote.Price),
		utils.FormatInt32(quote.Offer),
		strconv.FormatBool(quote.Confirmed),
	}); err != nil {
		return err
	}
	writer.Flush()

	return writer.Error()
}

func (r *CsvQuoteRepository) ReadQuotes(filename string) ([]models.Quote, error) {
	file, err := os.Open(filepath.Join(r.Dir, filename))
	if err != nil {
		log.WithError(err).WithField("file", filename).Error("[QuoteRepository] Error while reading file")
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(header)

	records, err := reader.ReadAll()
	if err != nil {
		log.WithError(err).WithField("file", filename).Error("[QuoteRepository] Error reading records")
		return nil, err
	}

	var quotes []models.Quote
	for i, record := range records {
		if i == 0 && record[0] == header[0] {
			continue
		}

		quote, err := parseQuote(record)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", filename, i+1, err)
		}
		quotes = append(quotes, quote)
	}

	return quotes, nil
}

func parseQuote(record []string) (models.Quote, error) {
	var (
		quote models.Quote
		err   error
	)

	if quote.At, err = time.Parse(time.RFC3339Nano, record[0]); err != nil {
		return quote, err
	}
	if quote.Serial, err = utils.ParseInt32(record[1]); err != nil {
		return quote, err
	}
	if quote.Price, err = utils.ParseInt32(record[2]); err != nil {
		return quote, err
	}
	if quote.Offer, err = utils.ParseInt32(record[3]); err != nil {
		return quote, err
	}
	if quote.Confirmed, err = strconv.ParseBool(record[4]); err != nil {
		return quote, err
	}

	return quote, nil
}
