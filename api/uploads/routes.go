package uploads

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi"

	"github.com/pcland/storefront-api/upload"
	"github.com/pcland/storefront-api/util"
)

// formFileKey is the multipart form entry the image is read from
const formFileKey string = "file"

// sniffLength is how many leading bytes content-type detection
// looks at, per http.DetectContentType
const sniffLength = 512

// Routes creates a new Chi router with all of the routes for uploads,
// at the root level
func Routes(uploadProvider upload.Provider) *chi.Mux {
	router := chi.NewRouter()
	router.Post("/", Upload(uploadProvider, mimeAllowlist()))
	return router
}

// Builds the MIME type allowlist from the environment.
// An unset or empty UPLOAD_MIME_TYPES accepts every detected type.
func mimeAllowlist() func(string) bool {
	allowed := make(map[string]struct{})
	if value, ok := os.LookupEnv("UPLOAD_MIME_TYPES"); ok {
		for _, m := range strings.Split(value, "|") {
			if m = strings.TrimSpace(m); m != "" {
				allowed[m] = struct{}{}
			}
		}
	}

	return func(m string) bool {
		if len(allowed) == 0 {
			return true
		}

		_, ok := allowed[m]
		return ok
	}
}

// Upload streams a multipart image submission through to the upload
// provider, responding with the URL the stored file can be fetched at.
// The content type is sniffed from the leading bytes rather than
// trusted from the part headers.
func Upload(uploadProvider upload.Provider, validMime func(string) bool) http.HandlerFunc {
	// Use a closure to inject the upload provider
	return func(w http.ResponseWriter, r *http.Request) {
		// Limit the read size to the configured size
		r.Body = http.MaxBytesReader(w, r.Body, uploadProvider.MaxBytes())

		file, err := formFile(r)
		if err != nil {
			util.ErrorWithCode(w, err, http.StatusBadRequest)
			return
		}

		// Sniff the leading bytes.
		// Files shorter than the sniff window are fine;
		// only what was actually read may be inspected and replayed
		header := make([]byte, sniffLength)
		n, err := io.ReadFull(file, header)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			util.Error(w, err)
			return
		}
		header = header[:n]

		contentType := http.DetectContentType(header)
		if contentType == "application/octet-stream" || !validMime(contentType) {
			util.ErrorWithCode(w,
				fmt.Errorf("unsupported file upload MIME type '%s'", contentType),
				http.StatusBadRequest)
			return
		}

		ext, err := extensionFor(contentType)
		if err != nil {
			util.ErrorWithCode(w, err, http.StatusBadRequest)
			return
		}

		// Stitch the sniffed bytes back in front of the remainder
		// and stream the whole file into the provider
		fileReader := io.MultiReader(bytes.NewReader(header), file)
		fileURL, err := uploadProvider.Upload(r.Context(), fileReader, ext, contentType)
		if err != nil {
			util.Error(w, err)
			return
		}

		// Return the resultant URL in a JSON object
		jsonResponse, err := json.Marshal(map[string]interface{}{"url": fileURL})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(jsonResponse)
	}
}

// Finds the file part in the multipart submission
func formFile(r *http.Request) (*multipart.Part, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, err
	}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if part.FormName() == formFileKey {
			return part, nil
		}
	}

	return nil, fmt.Errorf("expected multipart form submission with '%s' entry", formFileKey)
}

// Derives the stored file extension from the detected content type
func extensionFor(contentType string) (string, error) {
	extensions, err := mime.ExtensionsByType(contentType)
	if err != nil {
		return "", err
	}
	if len(extensions) == 0 {
		return "", fmt.Errorf("unsupported file upload MIME type '%s'", contentType)
	}

	return extensions[0], nil
}
