package dataset

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/erin-james/ai-query-interface/model"
)

// ErrMissingColumn reports a CSV file whose header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// File names match the source exports the service was built around.
const (
	customersFile = "Customers.csv"
	detailFile    = "Detail.csv"
	inventoryFile = "Inventory.csv"
	pricelistFile = "Pricelist.csv"
)

// CSVProvider loads the four datasets from CSV files in a directory.
// Individual malformed rows are dropped with a log note; a missing file
// or header fails the whole load.
type CSVProvider struct {
	dir    string
	logger *zap.Logger
}

func NewCSVProvider(dir string, logger *zap.Logger) *CSVProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVProvider{dir: dir, logger: logger}
}

func (p *CSVProvider) Load(ctx context.Context) (*model.Snapshot, error) {
	snap := &model.Snapshot{}

	if err := p.readFile(customersFile, func(row record) {
		c := model.Customer{ID: row.get("cid"), Name: row.get("name")}
		if c.Name == "" {
			// TODO: Customers exports are migrating to a single name
			// column; drop the fname1/lname fallback once they have.
			c.Name = strings.TrimSpace(row.get("fname1") + " " + row.get("lname"))
		}
		if c.ID == "" {
			p.skip(customersFile, row, "empty cid")
			return
		}
		snap.Customers = append(snap.Customers, c)
	}, "cid"); err != nil {
		return nil, err
	}

	if err := p.readFile(detailFile, func(row record) {
		line := model.OrderLine{
			CustomerID: row.get("cid"),
			ItemID:     row.get("item_id"),
		}
		if line.CustomerID == "" || line.ItemID == "" {
			p.skip(detailFile, row, "empty identifier")
			return
		}
		qty, err := strconv.Atoi(row.get("quantity"))
		if err != nil {
			p.skip(detailFile, row, "bad quantity")
			return
		}
		price, err := decimal.NewFromString(row.get("unit_price"))
		if err != nil {
			p.skip(detailFile, row, "bad unit_price")
			return
		}
		line.Quantity = qty
		line.UnitPrice = price
		if raw := row.get("ordered_at"); raw != "" {
			if t, err := parseDate(raw); err == nil {
				line.OrderedAt = sql.NullTime{Time: t, Valid: true}
			}
		}
		snap.OrderLines = append(snap.OrderLines, line)
	}, "cid", "item_id", "quantity", "unit_price"); err != nil {
		return nil, err
	}

	if err := p.readFile(inventoryFile, func(row record) {
		item := model.InventoryItem{ID: row.get("item_id"), Name: row.get("name")}
		if item.ID == "" {
			p.skip(inventoryFile, row, "empty item_id")
			return
		}
		stock, err := strconv.Atoi(row.get("stock"))
		if err != nil {
			p.skip(inventoryFile, row, "bad stock")
			return
		}
		item.Stock = stock
		snap.Inventory = append(snap.Inventory, item)
	}, "item_id", "name", "stock"); err != nil {
		return nil, err
	}

	if err := p.readFile(pricelistFile, func(row record) {
		entry := model.PriceListEntry{ItemID: row.get("item_id")}
		if entry.ItemID == "" {
			p.skip(pricelistFile, row, "empty item_id")
			return
		}
		price, err := decimal.NewFromString(row.get("baseprice"))
		if err != nil {
			p.skip(pricelistFile, row, "bad baseprice")
			return
		}
		entry.Price = price
		snap.PriceList = append(snap.PriceList, entry)
	}, "item_id", "baseprice"); err != nil {
		return nil, err
	}

	p.logger.Info("loaded dataset snapshot from csv",
		zap.String("dir", p.dir),
		zap.Int("customers", len(snap.Customers)),
		zap.Int("order_lines", len(snap.OrderLines)),
		zap.Int("inventory", len(snap.Inventory)),
		zap.Int("pricelist", len(snap.PriceList)),
	)
	return snap, nil
}

type record struct {
	index  map[string]int
	fields []string
	line   int
}

func (r record) get(key string) string {
	i, ok := r.index[key]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (p *CSVProvider) readFile(name string, visit func(record), required ...string) error {
	f, err := os.Open(filepath.Join(p.dir, name))
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read %s header: %w", name, err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[normalizeHeader(h)] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("%s: %w: %s", name, ErrMissingColumn, col)
		}
	}

	line := 1
	for {
		fields, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			p.logger.Warn("skipping unreadable csv row",
				zap.String("file", name), zap.Int("line", line), zap.Error(err))
			continue
		}
		visit(record{index: index, fields: fields, line: line})
	}
	return nil
}

func (p *CSVProvider) skip(file string, row record, reason string) {
	p.logger.Warn("skipping malformed row",
		zap.String("file", file), zap.Int("line", row.line), zap.String("reason", reason))
}

func normalizeHeader(h string) string {
	h = strings.TrimSpace(strings.ToLower(h))
	return strings.ReplaceAll(h, " ", "_")
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
