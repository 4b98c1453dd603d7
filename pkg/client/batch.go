package client

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds the number of token requests in flight during FetchAll.
const maxConcurrentFetches = 4

// FetchAll requests a join token for every given channel name on behalf of
// the same user. Requests run concurrently, at most maxConcurrentFetches at
// a time, with one HTTP GET per channel. The returned slice matches
// channelNames positionally. The first failure cancels the remaining
// requests and is returned.
func (c *Client) FetchAll(ctx context.Context, channelNames []string, userID uint32) ([]string, error) {
	tokens := make([]string, len(channelNames))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, channelName := range channelNames {
		i, channelName := i, channelName
		g.Go(func() error {
			result, err := c.Fetch(ctx, channelName, userID)
			if err != nil {
				return err
			}

			tokens[i] = result.Token

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return tokens, nil
}
