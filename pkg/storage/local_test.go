package storage_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/shashiranjanraj/vanijya/config"
	"github.com/shashiranjanraj/vanijya/pkg/storage"
)

func bootLocal(t *testing.T) {
	t.Helper()
	if err := config.Load(); err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	config.Set("STORAGE_DISK", "local")
	config.Set("STORAGE_LOCAL_ROOT", t.TempDir())
	config.Set("STORAGE_URL", "http://cdn.example.com/files")
	storage.Connect()
}

func TestLocalDiskRoundtrip(t *testing.T) {
	bootLocal(t)

	if storage.Exists("products/1.png") {
		t.Fatal("fresh disk should be empty")
	}

	if err := storage.Put("products/1.png", []byte("image bytes")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !storage.Exists("products/1.png") {
		t.Fatal("file missing after Put")
	}

	data, err := storage.Get("products/1.png")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != "image bytes" {
		t.Errorf("Get = %q", data)
	}

	size, err := storage.Size("products/1.png")
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != int64(len("image bytes")) {
		t.Errorf("Size = %d", size)
	}

	if err := storage.Delete("products/1.png"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if storage.Exists("products/1.png") {
		t.Error("file present after Delete")
	}

	// Deleting a missing file is not an error.
	if err := storage.Delete("products/1.png"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestLocalDiskStreams(t *testing.T) {
	bootLocal(t)

	if err := storage.PutStream("a/b/c.txt", bytes.NewBufferString("streamed")); err != nil {
		t.Fatalf("PutStream: %v", err)
	}

	rc, err := storage.GetStream("a/b/c.txt")
	if err != nil {
		t.Fatalf("GetStream: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "streamed" {
		t.Errorf("GetStream = %q", data)
	}
}

func TestLocalDiskURL(t *testing.T) {
	bootLocal(t)

	got := storage.URL("products/7.png")
	want := "http://cdn.example.com/files/products/7.png"
	if got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}
