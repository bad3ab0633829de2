package source

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileDocument is the YAML layout of a table file.
type fileDocument struct {
	FurnitureTypes [][]string `yaml:"furniture_types"`
	FurnitureSets  [][]string `yaml:"furniture_sets"`
}

// File reads both tables from one YAML document.
type File struct {
	path string
}

// NewFile creates a source reading the YAML document at path.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Name() string { return KindFile + ":" + f.path }

func (f *File) FurnitureTypes(ctx context.Context) ([][]string, error) {
	doc, err := f.read()
	if err != nil {
		return nil, err
	}
	return doc.FurnitureTypes, nil
}

func (f *File) FurnitureSets(ctx context.Context) ([][]string, error) {
	doc, err := f.read()
	if err != nil {
		return nil, err
	}
	return doc.FurnitureSets, nil
}

func (f *File) read() (*fileDocument, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read tables file: %w", err)
	}

	var doc fileDocument
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse tables file %s: %w", f.path, err)
	}
	return &doc, nil
}

// MarshalFile renders both tables of src as a YAML document readable by File.
func MarshalFile(ctx context.Context, src Source) ([]byte, error) {
	types, err := src.FurnitureTypes(ctx)
	if err != nil {
		return nil, err
	}
	sets, err := src.FurnitureSets(ctx)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(fileDocument{FurnitureTypes: types, FurnitureSets: sets})
}
