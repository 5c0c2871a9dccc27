package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/elkmr-code/receipt-scan/internal/config"
	"github.com/elkmr-code/receipt-scan/internal/services"
)

func main() {
	// Command line flags
	textFile := flag.String("file", "", "Read OCR text from this file instead of stdin")
	payload := flag.String("payload", "", "Decode a barcode/QR payload instead of parsing text")
	confidence := flag.Float64("confidence", 0, "Confidence to assign to extracted items (0 uses the configured default)")
	flag.Parse()

	// Load .env
	godotenv.Load()

	// Load config
	cfg := config.Load()

	if *payload != "" {
		decoded, err := services.DecodeScanPayload(*payload)
		if err != nil {
			log.Fatalf("Failed to decode payload: %v", err)
		}
		printJSON(decoded)
		return
	}

	text, err := readText(*textFile)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	parser := services.NewReceiptParser(services.ParserConfig{
		MinItemPrice:        cfg.MinItemPrice,
		MaxItemPrice:        cfg.MaxItemPrice,
		MinNameLength:       cfg.MinNameLength,
		MaxNameLength:       cfg.MaxNameLength,
		SimilarityThreshold: cfg.SimilarityThreshold,
		PriceProximity:      cfg.PriceProximity,
		TotalToleranceAbs:   cfg.TotalToleranceAbs,
		TotalTolerancePct:   cfg.TotalTolerancePct,
		DefaultConfidence:   cfg.DefaultConfidence,
	})

	if *confidence > 0 {
		printJSON(parser.ParseWithConfidence(text, *confidence))
		return
	}
	printJSON(parser.Parse(text))
}

func readText(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
}
