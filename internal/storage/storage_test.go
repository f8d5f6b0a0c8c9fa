package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{
			name: "extension-less key",
			ref:  "http://minio:9000/oralvis/oralvis_scans/0b8e7c1a-2f4d-4a6e-9c3b-1d2e3f4a5b6c",
			want: "oralvis_scans/0b8e7c1a-2f4d-4a6e-9c3b-1d2e3f4a5b6c",
		},
		{
			name: "trailing extension stripped",
			ref:  "https://res.example.com/image/upload/v123/oralvis_scans/abc123.jpg",
			want: "oralvis_scans/abc123",
		},
		{
			name: "only last extension stripped",
			ref:  "https://host/bucket/oralvis_scans/scan.v2.png",
			want: "oralvis_scans/scan.v2",
		},
		{
			name: "dot in folder segment kept",
			ref:  "https://host/v1.2/abc",
			want: "v1.2/abc",
		},
		{
			name: "trailing slash ignored",
			ref:  "https://host/bucket/oralvis_scans/abc123/",
			want: "oralvis_scans/abc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromURL(tt.ref))
		})
	}
}

func TestKeyFromURL_InvertsPutConvention(t *testing.T) {
	// A URL built the way Put builds them must map back to the same key.
	key := ScanFolder + "/4fa2d6f8-0000-4000-8000-9e3c1b2a4d5e"
	url := "http://localhost:9000/oralvis/" + key
	assert.Equal(t, key, KeyFromURL(url))
}

func TestNewMinIO_ConfigValidation(t *testing.T) {
	_, err := NewMinIO(Config{})
	assert.Error(t, err)

	_, err = NewMinIO(Config{Endpoint: "localhost:9000"})
	assert.Error(t, err)

	_, err = NewMinIO(Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"})
	assert.Error(t, err)
}
