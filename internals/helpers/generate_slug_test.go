package helper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Belajar Go Dasar":        "belajar-go-dasar",
		"  Kelas   Fullstack!!  ": "kelas-fullstack",
		"Go 101: Pemula -> Mahir": "go-101-pemula-mahir",
		"---":                     "",
		"":                        "",
	}
	for in, want := range cases {
		require.Equal(t, want, GenerateSlug(in), "input: %q", in)
	}
}
