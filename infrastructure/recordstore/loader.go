// Package recordstore loads the per-client transaction and transfer CSV
// feeds eagerly and serves them from memory, indexed by client code. The
// store is immutable after load, so concurrent readers need no coordination.
package recordstore

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/daniyar-b/bank-recommender-api/internal/domain"
	"github.com/daniyar-b/bank-recommender-api/pkg/utils"
)

var (
	transactionColumns = []string{"client_code", "name", "product", "status", "city", "date", "category", "amount"}
	transferColumns    = []string{"client_code", "date", "type", "direction", "amount"}
)

// LoadSummary reports the outcome of a directory ingest. Bad files are
// skipped, not fatal, so a batch run can proceed on partial data.
type LoadSummary struct {
	FilesLoaded  int
	FilesSkipped int
	Transactions int
	Transfers    int
}

// LoadDir ingests every client_*_transactions_3m.csv file under dir together
// with its sibling client_*_transfers_3m.csv into a single store. A pair
// whose transfers file is absent, or whose content fails to parse, is logged
// and skipped.
func LoadDir(dir string) (*MemoryStore, *LoadSummary, error) {
	pattern := filepath.Join(dir, "client_*_transactions_3m.csv")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "listing transaction files in %s", dir)
	}
	if len(matches) == 0 {
		return nil, nil, errors.Errorf("no transaction files found in %s", dir)
	}

	summary := &LoadSummary{}
	var transactions []domain.TransactionRecord
	var transfers []domain.TransferRecord

	for _, transactionsPath := range matches {
		transfersPath := strings.Replace(transactionsPath, "_transactions_", "_transfers_", 1)
		if _, err := os.Stat(transfersPath); err != nil {
			logrus.WithField("file", transfersPath).Warn("Transfers file missing, skipping client pair")
			summary.FilesSkipped++
			continue
		}

		trans, err := LoadTransactions(transactionsPath)
		if err != nil {
			logrus.WithError(err).WithField("file", transactionsPath).Warn("Skipping unparsable transactions file")
			summary.FilesSkipped++
			continue
		}

		trs, err := LoadTransfers(transfersPath)
		if err != nil {
			logrus.WithError(err).WithField("file", transfersPath).Warn("Skipping unparsable transfers file")
			summary.FilesSkipped++
			continue
		}

		transactions = append(transactions, trans...)
		transfers = append(transfers, trs...)
		summary.FilesLoaded++
	}

	if len(transactions) == 0 {
		return nil, nil, errors.Errorf("no transaction rows could be loaded from %s", dir)
	}

	summary.Transactions = len(transactions)
	summary.Transfers = len(transfers)

	return NewMemoryStore(transactions, transfers), summary, nil
}

// LoadTransactions parses one transactions CSV. Any malformed row fails the
// whole file with a ParseError; nulls never propagate into the aggregates.
func LoadTransactions(path string) ([]domain.TransactionRecord, error) {
	rows, index, err := readTable(path, transactionColumns)
	if err != nil {
		return nil, err
	}

	records := make([]domain.TransactionRecord, 0, len(rows))
	for i, row := range rows {
		line := i + 2 // header is line 1

		clientCode, err := strconv.Atoi(row[index["client_code"]])
		if err != nil {
			return nil, &ParseError{File: path, Line: line, Err: errors.Wrap(err, "client_code")}
		}

		date, err := parseDate(row[index["date"]])
		if err != nil {
			return nil, &ParseError{File: path, Line: line, Err: err}
		}

		amount, err := parseAmount(row[index["amount"]])
		if err != nil {
			return nil, &ParseError{File: path, Line: line, Err: err}
		}

		records = append(records, domain.TransactionRecord{
			ClientCode: clientCode,
			Name:       row[index["name"]],
			Product:    row[index["product"]],
			Status:     row[index["status"]],
			City:       row[index["city"]],
			Date:       *date,
			Category:   row[index["category"]],
			Amount:     amount,
		})
	}

	return records, nil
}

// LoadTransfers parses one transfers CSV with the same fail-fast policy.
func LoadTransfers(path string) ([]domain.TransferRecord, error) {
	rows, index, err := readTable(path, transferColumns)
	if err != nil {
		return nil, err
	}

	records := make([]domain.TransferRecord, 0, len(rows))
	for i, row := range rows {
		line := i + 2

		clientCode, err := strconv.Atoi(row[index["client_code"]])
		if err != nil {
			return nil, &ParseError{File: path, Line: line, Err: errors.Wrap(err, "client_code")}
		}

		date, err := parseDate(row[index["date"]])
		if err != nil {
			return nil, &ParseError{File: path, Line: line, Err: err}
		}

		direction := domain.TransferDirection(row[index["direction"]])
		if direction != domain.TransferIn && direction != domain.TransferOut {
			return nil, &ParseError{File: path, Line: line, Err: errors.Errorf("unknown direction %q", direction)}
		}

		amount, err := parseAmount(row[index["amount"]])
		if err != nil {
			return nil, &ParseError{File: path, Line: line, Err: err}
		}

		records = append(records, domain.TransferRecord{
			ClientCode: clientCode,
			Date:       *date,
			Type:       row[index["type"]],
			Direction:  direction,
			Amount:     amount,
		})
	}

	return records, nil
}

// readTable reads a CSV file and validates that every required column is
// present in the header. It returns the data rows and a column name index.
func readTable(path string, required []string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &ParseError{File: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, nil, &ParseError{File: path, Err: errors.Wrap(err, "reading header")}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, column := range required {
		if _, ok := index[column]; !ok {
			return nil, nil, &ParseError{File: path, Err: errors.Errorf("missing required column %q", column)}
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		if parseErr, ok := err.(*csv.ParseError); ok {
			return nil, nil, &ParseError{File: path, Line: parseErr.Line, Err: err}
		}
		if err != io.EOF {
			return nil, nil, &ParseError{File: path, Err: err}
		}
	}

	return rows, index, nil
}

// parseDate rejects empty values; a blank date must fail the row instead of
// propagating a zero time into the aggregates.
func parseDate(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("empty date")
	}
	date, err := utils.ParseDate(raw)
	if err != nil {
		return nil, errors.Wrap(err, "date")
	}
	return date, nil
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrap(err, "amount")
	}
	if amount < 0 {
		return 0, errors.Errorf("negative amount %v", amount)
	}
	return amount, nil
}
