package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Semua gambar upload (thumbnail kursus dsb.) dinormalkan ke WebP
// supaya ukurannya kecil dan format seragam.

const (
	thumbMaxW       = 1600
	thumbMaxH       = 1600
	thumbQuality    = 80
	uploadDirEnvKey = "UPLOAD_DIR"
)

// SaveImageAsWebP membaca file multipart (jpeg/png/webp), resize bila perlu,
// encode ke WebP, simpan ke folder upload lokal, dan kembalikan public path-nya.
func SaveImageAsWebP(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("gagal membaca file gambar: %w", err)
	}

	img, err := decodeImage(all, fileHeader.Filename)
	if err != nil {
		return "", err
	}

	// Resize keep-aspect bila melebihi batas
	b := img.Bounds()
	if b.Dx() > thumbMaxW || b.Dy() > thumbMaxH {
		img = imaging.Fit(img, thumbMaxW, thumbMaxH, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: thumbQuality}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	baseDir := os.Getenv(uploadDirEnvKey)
	if baseDir == "" {
		baseDir = "uploads"
	}
	dir := filepath.Join(baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	filename := uuid.NewString() + ".webp"
	fullPath := filepath.Join(dir, filename)
	if err := os.WriteFile(fullPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}

	// Path publik (disajikan via app.Static("/uploads", ...))
	return "/" + filepath.ToSlash(filepath.Join("uploads", folder, filename)), nil
}

// decodeImage: sniff MIME dulu, fallback ke ekstensi
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)

	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		ext := strings.ToLower(filepath.Ext(filename))
		switch ext {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(all))
		case ".png":
			img, err = png.Decode(bytes.NewReader(all))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(all))
		default:
			return nil, fmt.Errorf("format tidak didukung: %s / %s", ct, ext)
		}
	}
	return img, err
}
