package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestUploadAndDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	url, err := store.Upload(ctx, "documents", "42/invoice.pdf", []byte("pdf bytes"), "application/pdf")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "/blobs/documents/42/invoice.pdf" {
		t.Fatalf("unexpected URL %q", url)
	}

	onDisk := filepath.Join(store.BaseDir(), "documents", "42", "invoice.pdf")
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "pdf bytes" {
		t.Fatalf("content mismatch: %q", data)
	}

	if err := store.Delete(ctx, "documents", "42/invoice.pdf"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Fatalf("blob still on disk")
	}

	// Deleting a missing blob is a no-op.
	if err := store.Delete(ctx, "documents", "42/invoice.pdf"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestUploadRejectsTraversal(t *testing.T) {
	ctx := context.Background()
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Upload(ctx, "documents", "../../etc/passwd", []byte("x"), ""); err != nil {
		// Clean collapses the traversal inside the bucket; either a
		// rejection or a contained write is acceptable, never an escape.
		return
	}
	escaped := filepath.Join(store.BaseDir(), "..", "etc", "passwd")
	if _, statErr := os.Stat(escaped); statErr == nil {
		t.Fatalf("upload escaped the base directory")
	}
}

func TestUploadRequiresBucketAndPath(t *testing.T) {
	ctx := context.Background()
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Upload(ctx, "", "a.txt", []byte("x"), ""); err == nil {
		t.Fatalf("empty bucket should fail")
	}
	if _, err := store.Upload(ctx, "documents", "", []byte("x"), ""); err == nil {
		t.Fatalf("empty path should fail")
	}
}
