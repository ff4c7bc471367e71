package load

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestStructure(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     [][]bool
		wantErr  bool
	}{
		{
			name:     "simple",
			contents: "__#\n#__\n",
			want: [][]bool{
				{true, true, false},
				{false, true, true},
			},
		},
		{
			name:     "short lines padded with blocked cells",
			contents: "____\n__\n",
			want: [][]bool{
				{true, true, true, true},
				{true, true, false, false},
			},
		},
		{
			name:     "crlf line endings",
			contents: "__\r\n__\r\n",
			want: [][]bool{
				{true, true},
				{true, true},
			},
		},
		{
			name:     "empty file",
			contents: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Structure(writeFile(t, "structure.txt", tt.contents))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Structure() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Structure() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !slices.Equal(got[i], tt.want[i]) {
					t.Errorf("row %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStructure_MissingFile(t *testing.T) {
	if _, err := Structure(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Errorf("Structure() on a missing file should error")
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     []string
		wantErr  bool
	}{
		{
			name:     "uppercases and keeps order",
			contents: "cat\nDog\nact\n",
			want:     []string{"CAT", "DOG", "ACT"},
		},
		{
			name:     "skips comments and blanks",
			contents: "# header\n\ncat\n  dog  \n",
			want:     []string{"CAT", "DOG"},
		},
		{
			name:     "deduplicates",
			contents: "cat\nCAT\ncat\n",
			want:     []string{"CAT"},
		},
		{
			name:     "rejects non-letters",
			contents: "c4t\n",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Words(writeFile(t, "words.txt", tt.contents))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Words() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Words() = %v, want %v", got, tt.want)
			}
		})
	}
}
