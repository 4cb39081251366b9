package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"inspection-app/config"
	"inspection-app/database"
	"inspection-app/dto"
	"inspection-app/logger"
	"inspection-app/migration"
	"inspection-app/repositories"
	"inspection-app/services"
	"inspection-app/types"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const importActor = "processor"

var importColumns = []string{
	"inspectionCallNo", "poNumber", "poDate", "productName", "vendorName",
	"purchasingAuthority", "billPayingOfficer", "poQuantity", "deliveryPeriod", "placeOfInspection",
}

type importer struct {
	forms *services.InspectionFormService
	files repositories.FileLogRepository
	log   logger.Logger
}

func newImporter(forms *services.InspectionFormService, files repositories.FileLogRepository) *importer {
	return &importer{forms: forms, files: files, log: logger.New("processor")}
}

// processDir imports every csv file in dir that was not imported before and
// returns how many files were processed.
func (im *importer) processDir(ctx context.Context, dir string) (int, error) {
	log := im.log.Function("processDir")

	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return 0, log.Err("failed to read folder", err, "dir", dir)
	}

	processed := 0
	for _, file := range files {
		done, err := im.files.IsProcessed(ctx, filepath.Base(file))
		if err != nil {
			return processed, err
		}
		if done {
			log.Info("file already processed, skip", "file", file)
			continue
		}
		if err := im.processFile(ctx, file); err != nil {
			return processed, err
		}
		processed++
	}
	return processed, nil
}

func (im *importer) processFile(ctx context.Context, filename string) error {
	log := im.log.Function("processFile")

	info, err := os.Stat(filename)
	if err != nil {
		return log.Err("failed to stat file", err, "file", filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return log.Err("failed to open file", err, "file", filename)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return im.files.MarkProcessed(ctx, filepath.Base(filename), info.ModTime(), 0)
	}
	if err != nil {
		return log.Err("failed to read header", err, "file", filename)
	}
	columns := columnIndex(header)

	imported := 0
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn("skipping unreadable row", "file", filename, "line", line, "error", err)
			continue
		}

		po, err := parseRow(columns, record)
		if err != nil {
			log.Warn("skipping invalid row", "file", filename, "line", line, "error", err)
			continue
		}
		if _, err := im.forms.SavePODetails(ctx, po, importActor); err != nil {
			var ve *services.ValidationError
			if errors.As(err, &ve) {
				log.Warn("skipping invalid row", "file", filename, "line", line, "error", err)
				continue
			}
			return err
		}
		imported++
	}

	log.Info("file processed", "file", filename, "rows", imported)
	return im.files.MarkProcessed(ctx, filepath.Base(filename), info.ModTime(), imported)
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

func parseRow(columns map[string]int, record []string) (dto.PODetails, error) {
	get := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	po := dto.PODetails{
		InspectionCallNo:    get("inspectionCallNo"),
		PONumber:            get("poNumber"),
		ProductName:         get("productName"),
		VendorName:          get("vendorName"),
		PurchasingAuthority: get("purchasingAuthority"),
		BillPayingOfficer:   get("billPayingOfficer"),
		DeliveryPeriod:      get("deliveryPeriod"),
		PlaceOfInspection:   get("placeOfInspection"),
	}

	if raw := get("poDate"); raw != "" {
		date, err := types.ParseLocalDate(raw)
		if err != nil {
			return dto.PODetails{}, err
		}
		po.PODate = &date
	}
	if raw := get("poQuantity"); raw != "" {
		qty, err := strconv.Atoi(raw)
		if err != nil {
			return dto.PODetails{}, fmt.Errorf("invalid poQuantity %q", raw)
		}
		po.POQuantity = &qty
	}
	return po, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log := logger.New("processor").Function("main")

	if cfg.ImportDir == "" {
		log.Er("IMPORT_DIR is not set", errors.New("missing import dir"))
		os.Exit(1)
	}

	clock := services.SystemClock{}
	db, err := database.Open(cfg, clock.Now)
	if err != nil {
		os.Exit(1)
	}
	defer database.Close(db)

	if err := migration.Migrate(db); err != nil {
		log.Er("failed to migrate", err)
		os.Exit(1)
	}

	forms := services.NewInspectionFormService(db, clock, services.NewNotifier(cfg), nil)
	im := newImporter(forms, repositories.NewFileLogRepository(db))

	log.Info("processor started", "dir", cfg.ImportDir, "columns", strings.Join(importColumns, ","))
	count, err := im.processDir(context.Background(), cfg.ImportDir)
	if err != nil {
		log.Er("import stopped", err, "processed", count)
		os.Exit(1)
	}
	log.Info("all csv files processed", "files", count)
}
