package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"citas-unidades/internal/infra/store"
	"citas-unidades/internal/pkg/config"
	"citas-unidades/internal/pkg/errs"

	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// Client implements store.RecordStore on a Google Sheets worksheet. All
// calls pass through a client-side rate limiter because the Sheets API
// throttles per minute and the quota is shared with human edits.
type Client struct {
	svc           *sheetsv4.Service
	spreadsheetID string
	worksheet     string
	limiter       *rate.Limiter
	logger        *slog.Logger
}

func New(ctx context.Context, cfg config.SheetsConfig, logger *slog.Logger) (*Client, error) {
	creds, err := readCredentials(cfg)
	if err != nil {
		return nil, err
	}

	jwtCfg, err := google.JWTConfigFromJSON(creds, sheetsv4.SpreadsheetsScope)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse service account credentials")
	}

	svc, err := sheetsv4.NewService(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build sheets service")
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     cfg.Worksheet,
		limiter:       rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
		logger:        logger,
	}, nil
}

func readCredentials(cfg config.SheetsConfig) ([]byte, error) {
	if cfg.CredentialsJSON != "" {
		return []byte(cfg.CredentialsJSON), nil
	}
	if cfg.CredentialsFile != "" {
		creds, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, errs.Wrap(err, "failed to read credentials file")
		}
		return creds, nil
	}
	return nil, errs.New("sheets credentials are not configured")
}

func (c *Client) ListAll(ctx context.Context) ([]store.Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.dataRange()).Context(ctx).Do()
	if err != nil {
		return nil, c.wrapErr("list", err)
	}

	records := make([]store.Record, 0, len(resp.Values))
	for _, row := range resp.Values {
		records = append(records, rowToRecord(row))
	}
	return records, nil
}

func (c *Client) Append(ctx context.Context, rec store.Record) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	vr := &sheetsv4.ValueRange{Values: [][]interface{}{recordToRow(rec)}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.dataRange(), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return c.wrapErr("append", err)
	}
	return nil
}

func (c *Client) FindPosition(ctx context.Context, keyField, keyValue string) (int, error) {
	colIdx := columnIndex(keyField)
	if colIdx < 0 {
		return 0, store.NewErr(store.KindInvalid, fmt.Sprintf("unknown column %q", keyField))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.columnRange(colIdx)).Context(ctx).Do()
	if err != nil {
		return 0, c.wrapErr("find", err)
	}

	want := store.NormalizeCell(keyValue)
	for i, row := range resp.Values {
		if len(row) > 0 && store.NormalizeCell(cellString(row[0])) == want {
			return store.PositionOf(i), nil
		}
	}
	return 0, store.NewErr(store.KindNotFound, fmt.Sprintf("no record with %s=%q", keyField, keyValue))
}

func (c *Client) UpdateField(ctx context.Context, position int, field, value string) error {
	colIdx := columnIndex(field)
	if colIdx < 0 {
		return store.NewErr(store.KindInvalid, fmt.Sprintf("unknown column %q", field))
	}
	if position < store.DataStartRow {
		return store.NewErr(store.KindInvalid, fmt.Sprintf("position %d is before the data range", position))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	vr := &sheetsv4.ValueRange{Values: [][]interface{}{{value}}}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, c.cellRange(colIdx, position), vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return c.wrapErr("update", err)
	}
	return nil
}

func (c *Client) UpdateFieldBatch(ctx context.Context, updates []store.FieldUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	data := make([]*sheetsv4.ValueRange, 0, len(updates))
	for _, u := range updates {
		colIdx := columnIndex(u.Field)
		if colIdx < 0 {
			return store.NewErr(store.KindInvalid, fmt.Sprintf("unknown column %q", u.Field))
		}
		if u.Position < store.DataStartRow {
			return store.NewErr(store.KindInvalid, fmt.Sprintf("position %d is before the data range", u.Position))
		}
		data = append(data, &sheetsv4.ValueRange{
			Range:  c.cellRange(colIdx, u.Position),
			Values: [][]interface{}{{u.Value}},
		})
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req := &sheetsv4.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             data,
	}
	_, err := c.svc.Spreadsheets.Values.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return c.wrapErr("batch update", err)
	}
	return nil
}

// EnsureSchema creates the worksheet and header row on first use and
// appends the registrador column to sheets left behind by the legacy
// registration tool. Any other header layout is refused rather than
// repaired.
func (c *Client) EnsureSchema(ctx context.Context) error {
	if err := c.ensureWorksheet(ctx); err != nil {
		return err
	}
	return c.ensureHeader(ctx)
}

func (c *Client) ensureWorksheet(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return c.wrapErr("get spreadsheet", err)
	}

	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == c.worksheet {
			return nil
		}
	}

	c.logger.Info("creating worksheet", slog.String("worksheet", c.worksheet))

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req := &sheetsv4.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsv4.Request{{
			AddSheet: &sheetsv4.AddSheetRequest{
				Properties: &sheetsv4.SheetProperties{Title: c.worksheet},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return c.wrapErr("add worksheet", err)
	}
	return nil
}

func (c *Client) ensureHeader(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.headerRange()).Context(ctx).Do()
	if err != nil {
		return c.wrapErr("read header", err)
	}

	var header []string
	if len(resp.Values) > 0 {
		for _, cell := range resp.Values[0] {
			header = append(header, store.NormalizeCell(cellString(cell)))
		}
	}

	switch {
	case len(header) == 0:
		c.logger.Info("writing header row", slog.String("worksheet", c.worksheet))
		return c.writeHeader(ctx, store.Columns)
	case equalColumns(header, store.Columns):
		return nil
	case equalColumns(header, store.Columns[:len(store.Columns)-1]):
		// Legacy sheet without the registrador column.
		c.logger.Info("appending registrador column to legacy header")
		return c.writeHeader(ctx, store.Columns)
	default:
		return store.NewErr(store.KindInvalid, fmt.Sprintf("worksheet %q has an unexpected header layout", c.worksheet))
	}
}

func (c *Client) writeHeader(ctx context.Context, columns []string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	row := make([]interface{}, len(columns))
	for i, col := range columns {
		row[i] = col
	}
	vr := &sheetsv4.ValueRange{Values: [][]interface{}{row}}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, c.headerRange(), vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return c.wrapErr("write header", err)
	}
	return nil
}

func (c *Client) wrapErr(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return store.WrapErr(c.logger, classify(err), "sheets "+op+" failed", err)
}

func (c *Client) a1(ref string) string {
	return fmt.Sprintf("'%s'!%s", c.worksheet, ref)
}

func (c *Client) dataRange() string {
	last := colLetter(len(store.Columns) - 1)
	return c.a1(fmt.Sprintf("A%d:%s", store.DataStartRow, last))
}

func (c *Client) headerRange() string {
	last := colLetter(len(store.Columns) - 1)
	return c.a1(fmt.Sprintf("A%d:%s%d", store.HeaderRow, last, store.HeaderRow))
}

func (c *Client) columnRange(colIdx int) string {
	col := colLetter(colIdx)
	return c.a1(fmt.Sprintf("%s%d:%s", col, store.DataStartRow, col))
}

func (c *Client) cellRange(colIdx, row int) string {
	return c.a1(fmt.Sprintf("%s%d", colLetter(colIdx), row))
}

func columnIndex(field string) int {
	for i, col := range store.Columns {
		if col == field {
			return i
		}
	}
	return -1
}

func colLetter(idx int) string {
	s := ""
	for idx >= 0 {
		s = string(rune('A'+idx%26)) + s
		idx = idx/26 - 1
	}
	return s
}

func rowToRecord(row []interface{}) store.Record {
	rec := make(store.Record, len(store.Columns))
	for i, col := range store.Columns {
		if i < len(row) {
			rec[col] = cellString(row[i])
		}
	}
	return rec
}

func recordToRow(rec store.Record) []interface{} {
	row := make([]interface{}, len(store.Columns))
	for i, col := range store.Columns {
		row[i] = rec[col]
	}
	return row
}

func cellString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
