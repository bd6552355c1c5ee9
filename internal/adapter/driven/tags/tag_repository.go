package tags

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/dell-inventory-report-go/internal/domain/repository"
	"github.com/jszwec/csvutil"
)

// serviceTagColumn é a coluna esperada em arquivos CSV de entrada. É o mesmo
// nome usado no relatório, então um relatório anterior pode ser reaproveitado.
const serviceTagColumn = "serviceTag"

type tagRecord struct {
	ServiceTag string `csv:"serviceTag"`
}

// TagRepositoryImpl implementa o TagRepository.
type TagRepositoryImpl struct{}

// NewTagRepository cria uma nova implementação do TagRepository.
func NewTagRepository() repository.TagRepository {
	return &TagRepositoryImpl{}
}

// LoadTags lê as service tags de um arquivo, na ordem em que aparecem.
// Arquivos .csv precisam da coluna serviceTag; qualquer outro formato é lido
// como uma tag por linha, ignorando linhas em branco e comentários com '#'.
func (r *TagRepositoryImpl) LoadTags(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening tags file: %w", err)
	}
	defer file.Close()

	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		return parseCSV(file)
	}
	return parseLines(file)
}

func parseCSV(reader io.Reader) ([]string, error) {
	decoder, err := csvutil.NewDecoder(csv.NewReader(reader))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	found := false
	for _, column := range decoder.Header() {
		if column == serviceTagColumn {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("tags CSV has no %q column", serviceTagColumn)
	}

	var records []tagRecord
	if err := decoder.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode tags CSV: %w", err)
	}

	result := make([]string, 0, len(records))
	for _, rec := range records {
		if tag := strings.TrimSpace(rec.ServiceTag); tag != "" {
			result = append(result, tag)
		}
	}
	return result, nil
}

func parseLines(reader io.Reader) ([]string, error) {
	result := []string{}
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result = append(result, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading tags file: %w", err)
	}
	return result, nil
}
