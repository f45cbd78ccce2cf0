package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads, parses, and validates a bank file.
func LoadFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	file, err := parseFile(data, path)
	if err != nil {
		return nil, err
	}
	return Build(file)
}

func parseFile(data []byte, path string) (File, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return parseJSONFile(data)
	}
	return parseYAMLFile(data)
}

func parseJSONFile(data []byte) (File, error) {
	var file File
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return File{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return File{}, fmt.Errorf("parse json: %w", err)
	}
	return file, nil
}

func parseYAMLFile(data []byte) (File, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	return file, nil
}
