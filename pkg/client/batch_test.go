package client

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func TestFetchAll(t *testing.T) {
	server := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"rtcToken":"token-for-%s"}`, mux.Vars(r)["channelName"])
	})

	transport := &countingTransport{next: http.DefaultTransport}
	c, err := NewClient(server.URL, WithHTTPClient(&http.Client{Transport: transport}))
	require.NoError(t, err)

	channelNames := []string{"lobby", "room-1", "room-2", "room-3", "room-4"}

	tokens, err := c.FetchAll(context.Background(), channelNames, testUserID)
	require.NoError(t, err)
	require.Len(t, tokens, len(channelNames))
	for i, channelName := range channelNames {
		require.Equal(t, "token-for-"+channelName, tokens[i])
	}

	require.EqualValues(t, len(channelNames), transport.Calls())
}

func TestFetchAllEmpty(t *testing.T) {
	server := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"rtcToken":%q}`, testToken)
	})

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	tokens, err := c.FetchAll(context.Background(), nil, testUserID)
	require.NoError(t, err)
	require.Empty(t, tokens)
}

func TestFetchAllPropagatesFailure(t *testing.T) {
	server := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["channelName"] == "broken" {
			fmt.Fprint(w, `{}`)
			return
		}
		fmt.Fprintf(w, `{"rtcToken":%q}`, testToken)
	})

	c, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = c.FetchAll(context.Background(), []string{"lobby", "broken", "room-1"}, testUserID)
	require.ErrorIs(t, err, ErrMissingToken)
}
