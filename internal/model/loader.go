package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"smartcart-service/internal/fileio"
	"smartcart-service/internal/order"
)

// ErrMissingInput marks an absent corpus file. Builds refuse to run on a
// partial data set.
var ErrMissingInput = errors.New("missing input")

// Corpus file names expected under the data dir.
const (
	OrderFile    = "order_data.csv"
	CustomerFile = "customer_data.csv"
	StoreFile    = "store_data.csv"
	TestFile     = "test_data_question.csv"
)

// ordersColumn holds the JSON order payload inside the order CSV.
const ordersColumn = "ORDERS"

// All four tables must be present before a build; only the order table feeds
// the model, the rest are read by surrounding tooling.
var requiredFiles = []string{OrderFile, CustomerFile, StoreFile, TestFile}

// LoadOrders verifies the corpus is complete, then parses every order
// payload into an item list. Rows with unparseable payloads come back as
// empty lists, not errors.
func LoadOrders(dataDir string) ([][]string, error) {
	for _, name := range requiredFiles {
		if _, err := os.Stat(filepath.Join(dataDir, name)); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, name)
		}
	}

	f, err := os.Open(filepath.Join(dataDir, OrderFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, OrderFile)
	}
	defer f.Close()

	rows, err := fileio.ReadAnyMaps(f, OrderFile, 1)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", OrderFile, err)
	}

	orders := make([][]string, 0, len(rows))
	for _, row := range rows {
		items := order.CleanItemList(order.ExtractItemNames(row[ordersColumn]))
		orders = append(orders, items)
	}
	return orders, nil
}
