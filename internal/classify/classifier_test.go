package classify

import (
	"reflect"
	"testing"

	"autoclean/internal/category"
	"autoclean/internal/model"
)

func testTable(t *testing.T) *category.Table {
	t.Helper()
	tbl, err := category.NewTable([]category.Category{
		{Label: "📁 Archives", Extensions: []string{"zip", "pak"}},
		{Label: "🎮 Games", Extensions: []string{"pak", "rom"}},
		{Label: "🖼️ Images", Extensions: []string{"jpg", "png"}},
		{Label: "❓ Misc"},
	}, "❓ Misc")
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return tbl
}

func TestClassify(t *testing.T) {
	tbl := testTable(t)

	tests := []struct {
		name string
		ext  string
		want []string
	}{
		{name: "single match", ext: "jpg", want: []string{"🖼️ Images"}},
		{name: "ambiguous", ext: "pak", want: []string{"📁 Archives", "🎮 Games"}},
		{name: "no match", ext: "weird", want: nil},
		{name: "no extension", ext: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := &model.FileRecord{Name: "file." + tt.ext, Extension: tt.ext}
			got := Classify(file, tbl)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
			if file.Category != "" {
				t.Error("Classify() must not mutate the record")
			}
		})
	}
}

func TestResultAdd(t *testing.T) {
	tbl := testTable(t)
	result := NewResult(tbl)

	a := &model.FileRecord{Name: "a.jpg", Extension: "jpg"}
	b := &model.FileRecord{Name: "b.jpg", Extension: "jpg"}
	c := &model.FileRecord{Name: "c.bin", Extension: "bin"}

	result.Add("🖼️ Images", a)
	result.Add("🖼️ Images", b)
	result.AddFallback(c)

	if a.Category != "🖼️ Images" {
		t.Errorf("Add() did not assign category, got %q", a.Category)
	}
	if c.Category != "❓ Misc" {
		t.Errorf("AddFallback() assigned %q, want fallback", c.Category)
	}

	images := result.Files("🖼️ Images")
	if len(images) != 2 || images[0] != a || images[1] != b {
		t.Error("bucket must preserve insertion order")
	}
	if result.Total() != 3 {
		t.Errorf("Total() = %d, want 3", result.Total())
	}
}
