package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// sizeSuffixes размерные суффиксы генерируемых вариантов
var sizeSuffixes = []string{"SM", "S-M", "ML", "M-L", "LXL"}

// header колонки генерируемого экспорта каталога
var header = []string{
	"sku", "name", "product_type", "product_online", "visibility",
	"configurable_variations", "associated_skus",
	"price", "base_image", "categories", "rd_ca_div_name", "rd_ca_metal",
}

func main() {
	gofakeit.Seed(0)

	sizes := []struct {
		name     string
		families int
	}{
		{"1K", 300},
		{"10K", 3000},
	}

	dataDir := filepath.Join("tests", "fixtures")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	for _, size := range sizes {
		fmt.Printf("Generating %s catalog...\n", size.name)
		path := filepath.Join(dataDir, "export_catalog_product_"+size.name+".csv")
		if err := writeCatalog(path, size.families); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		fmt.Printf("  -> %s\n", path)
	}
}

// writeCatalog пишет каталог: семьи непривязанных вариантов, одиночки,
// уже привязанные варианты с их родителями
func writeCatalog(path string, families int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return err
	}

	for i := 0; i < families; i++ {
		base := strings.ToUpper(gofakeit.LetterN(4)) + strconv.Itoa(1000+i)
		name := strings.ToUpper(gofakeit.ProductName())

		switch {
		case i%5 == 4:
			// Одинокий вариант: семейства не образует
			if err := writer.Write(variantRow(base, name, sizeSuffixes[0])); err != nil {
				return err
			}
		case i%7 == 6:
			// Уже привязанная пара со своим родителем
			variations := fmt.Sprintf("sku=%s-SM,size=SM|sku=%s-ML,size=ML", base, base)
			parent := []string{
				"P-" + base, name, "configurable", "1", "Catalog, Search",
				variations, base + "-SM," + base + "-ML",
				"", "", "Default Category/Rings", "Jewelry", "Gold",
			}
			if err := writer.Write(parent); err != nil {
				return err
			}
			if err := writer.Write(variantRow(base, name+" SM", "SM")); err != nil {
				return err
			}
			if err := writer.Write(variantRow(base, name+" ML", "ML")); err != nil {
				return err
			}
		default:
			// Непривязанная пара вариантов — кандидат на синтез
			count := 2 + i%2
			for v := 0; v < count && v < len(sizeSuffixes); v++ {
				suffix := sizeSuffixes[v]
				if err := writer.Write(variantRow(base, name+" "+suffix, suffix)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func variantRow(base, name, suffix string) []string {
	online := "1"
	if gofakeit.Number(0, 9) == 0 {
		online = "2"
	}
	return []string{
		base + "-" + suffix, name, "simple", online, "Catalog, Search",
		"", "",
		fmt.Sprintf("%.2f", gofakeit.Price(10, 500)),
		"/media/" + strings.ToLower(base) + ".jpg",
		"Default Category/Rings", "Jewelry", "Gold",
	}
}
