package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBucketClientUpload(t *testing.T) {
	var gotPath, gotContentType, gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewBucketClient(BucketOptions{BaseURL: srv.URL, Bucket: "room-images", APIKey: "secret"})
	if err != nil {
		t.Fatal(err)
	}

	url, err := client.Upload(context.Background(), "designs/u1/1.jpg", []byte("jpegbytes"), "image/jpeg")
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/object/room-images/designs/u1/1.jpg" {
		t.Errorf("upload path = %q", gotPath)
	}
	if gotContentType != "image/jpeg" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if string(gotBody) != "jpegbytes" {
		t.Errorf("body = %q", gotBody)
	}
	if url != srv.URL+"/object/public/room-images/designs/u1/1.jpg" {
		t.Errorf("public url = %q", url)
	}
}

func TestBucketClientUploadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	client, _ := NewBucketClient(BucketOptions{BaseURL: srv.URL, Bucket: "room-images"})
	if _, err := client.Upload(context.Background(), "k.jpg", []byte{1}, "image/jpeg"); err == nil {
		t.Error("expected an error for a rejected upload")
	}
	if _, err := client.Upload(context.Background(), "k.jpg", nil, "image/jpeg"); err == nil {
		t.Error("expected an error for an empty payload")
	}
}

func TestNewBucketClientValidation(t *testing.T) {
	if _, err := NewBucketClient(BucketOptions{Bucket: "b"}); err == nil {
		t.Error("missing base url accepted")
	}
	if _, err := NewBucketClient(BucketOptions{BaseURL: "http://x"}); err == nil {
		t.Error("missing bucket accepted")
	}
}
