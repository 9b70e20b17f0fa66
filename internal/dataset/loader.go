package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/logging"
)

// Loader fetches and decodes the static dataset document from a local
// file or an http(s) URL. The fetch is the only asynchronous boundary of
// the system; the context carries its timeout. A fetch or parse failure is
// a non-fatal load error: the caller proceeds with an empty collection.
type Loader struct {
	source string
	client *http.Client
	mapper *domain.Mapper
}

// NewLoader creates a loader for the given source (file path or URL)
func NewLoader(source string) *Loader {
	return &Loader{
		source: source,
		client: http.DefaultClient,
		mapper: domain.NewMapper(),
	}
}

// NewLoaderWithClient creates a loader with a custom HTTP client
func NewLoaderWithClient(source string, client *http.Client) *Loader {
	return &Loader{
		source: source,
		client: client,
		mapper: domain.NewMapper(),
	}
}

// Load fetches and decodes the dataset document.
func (l *Loader) Load(ctx context.Context) (domain.Dataset, error) {
	raw, err := l.fetch(ctx)
	if err != nil {
		return domain.Dataset{}, errors.NewLoadError(l.source, err)
	}

	dataset, err := Decode(raw)
	if err != nil {
		return domain.Dataset{}, errors.NewLoadError(l.source, err)
	}

	logging.Debugf("loaded dataset from %s: %d tasks, %d team members\n",
		l.source, len(dataset.Tasks), len(dataset.TeamMembers))
	return dataset, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://") {
		return l.fetchURL(ctx)
	}
	return os.ReadFile(l.source)
}

func (l *Loader) fetchURL(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// Decode parses a dataset document. Ids are decoded as json.Number so the
// loosely-typed id field survives both numeric and string forms.
func Decode(raw []byte) (domain.Dataset, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var record domain.DatasetRecord
	if err := decoder.Decode(&record); err != nil {
		return domain.Dataset{}, err
	}

	return domain.NewMapper().DatasetFromRecord(record), nil
}
