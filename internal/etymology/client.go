package etymology

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"
)

const (
	// DefaultEndpoint is the public DBnary SPARQL endpoint.
	DefaultEndpoint = "http://kaiko.getalp.org/sparql"

	requestTimeout = 8 * time.Second
)

// sparqlResponse is the subset of the SPARQL JSON results format this client
// reads. Shape mismatches fail closed: a response without bindings is an
// empty result, never a crash.
type sparqlResponse struct {
	Results struct {
		Bindings []struct {
			Ety struct {
				Value string `json:"value"`
			} `json:"ety"`
		} `json:"bindings"`
	} `json:"results"`
}

// DBnaryClient queries the DBnary knowledge graph for etymology triples.
type DBnaryClient struct {
	httpClient *resty.Client
	endpoint   string
}

// NewDBnaryClient creates a client for the given SPARQL endpoint. An empty
// endpoint uses the public one.
func NewDBnaryClient(endpoint string) *DBnaryClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client := resty.New()
	client.SetTimeout(requestTimeout)
	client.SetHeader("Accept", "application/sparql-results+json")
	client.SetHeader("User-Agent", "WordTree/1.0 (https://github.com/keigo1110/wordtree)")

	return &DBnaryClient{
		httpClient: client,
		endpoint:   endpoint,
	}
}

// Close releases the underlying HTTP client.
func (c *DBnaryClient) Close() error {
	return c.httpClient.Close()
}

// Etymology fetches the etymology text for an English word. It returns ""
// with a nil error when the graph has no etymology for the word.
func (c *DBnaryClient) Etymology(ctx context.Context, word string) (string, error) {
	query := fmt.Sprintf(`PREFIX dbnary: <http://kaiko.getalp.org/dbnary#>
PREFIX ontolex: <http://www.w3.org/ns/lemon/ontolex#>
PREFIX lime: <http://www.w3.org/ns/lemon/lime#>
SELECT ?ety WHERE {
  ?l ontolex:writtenRep "%s"@en ;
     lime:language "eng" ;
     dbnary:etymology ?ety
} LIMIT 1`, word)

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{"query": query}).
		SetResult(&sparqlResponse{}).
		Post(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	result, ok := response.Result().(*sparqlResponse)
	if !ok || result == nil || len(result.Results.Bindings) == 0 {
		return "", nil
	}
	return result.Results.Bindings[0].Ety.Value, nil
}
