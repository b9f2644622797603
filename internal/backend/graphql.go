package backend

import (
	"context"
	"fmt"
	"strings"

	"qrlinx/internal/model"
)

const analyticsQuery = `query GetAnalytics($shortHash: String!) {
  analytics(shortHash: $shortHash) {
    totalClicks
    uniqueClicks
    deviceBreakdown
    browserBreakdown
    countryBreakdown
    clicks {
      createdAt
      ipAddress
      country
      city
      referrer
      deviceType
      browser
    }
  }
}`

// GraphQLError is one entry of a top-level errors array
type GraphQLError struct {
	Message string `json:"message"`
}

// GraphQLErrors is returned when a response carries an errors array,
// regardless of any partial data alongside it.
type GraphQLErrors []GraphQLError

func (e GraphQLErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ge := range e {
		msgs = append(msgs, ge.Message)
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type analyticsResponse struct {
	Data *struct {
		Analytics *model.AnalyticsPayload `json:"analytics"`
	} `json:"data"`
	Errors GraphQLErrors `json:"errors"`
}

// Analytics runs the analytics(shortHash) query
func (c *Client) Analytics(ctx context.Context, shortHash string) (*model.AnalyticsPayload, error) {
	var resp analyticsResponse
	req := graphQLRequest{
		Query:     analyticsQuery,
		Variables: map[string]interface{}{"shortHash": shortHash},
	}
	if err := c.postJSON(ctx, "/graphql", req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, resp.Errors
	}
	if resp.Data == nil || resp.Data.Analytics == nil {
		return nil, fmt.Errorf("%s: %w", shortHash, ErrAnalyticsNotFound)
	}
	return resp.Data.Analytics, nil
}

