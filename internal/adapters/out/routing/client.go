// Package routing implements the RoutingService port against an external
// path finder over HTTP. The path finder works on a graph of voyages and
// returns transit paths; this adapter translates them into itineraries and
// filters out paths that do not satisfy the route specification.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"
)

// transitEdge is one voyage hop of a transit path as the path finder
// reports it.
type transitEdge struct {
	VoyageNumber string    `json:"voyageNumber"`
	FromUnLocode string    `json:"fromUnLocode"`
	ToUnLocode   string    `json:"toUnLocode"`
	FromDate     time.Time `json:"fromDate"`
	ToDate       time.Time `json:"toDate"`
}

// transitPath is one candidate route through the voyage graph.
type transitPath struct {
	TransitEdges []transitEdge `json:"transitEdges"`
}

// Client queries the external path finder and converts its transit paths
// to itineraries. Voyages and locations referenced by the edges are
// resolved through the repositories; an edge referencing unknown reference
// data drops the whole path rather than failing the request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	voyages    ports.VoyageRepository
	locations  ports.LocationRepository
}

// NewClient creates a routing client for the path finder at baseURL.
func NewClient(baseURL string, voyages ports.VoyageRepository, locations ports.LocationRepository) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		voyages:    voyages,
		locations:  locations,
	}
}

// FetchRoutesForSpecification asks the path finder for routes from the
// specification's origin to its destination and returns the candidate
// itineraries that satisfy it. No candidates is not an error.
func (c *Client) FetchRoutesForSpecification(
	ctx context.Context,
	routeSpec cargo.RouteSpecification,
) ([]*cargo.Itinerary, error) {
	if err := routeSpec.Validate(); err != nil {
		return nil, err
	}

	paths, err := c.fetchTransitPaths(ctx, routeSpec)
	if err != nil {
		return nil, err
	}

	itineraries := make([]*cargo.Itinerary, 0, len(paths))
	for _, path := range paths {
		itinerary, err := c.toItinerary(ctx, path)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return nil, err
		}
		if routeSpec.IsSatisfiedBy(itinerary) {
			itineraries = append(itineraries, itinerary)
		}
	}

	return itineraries, nil
}

func (c *Client) fetchTransitPaths(
	ctx context.Context,
	routeSpec cargo.RouteSpecification,
) ([]transitPath, error) {
	query := url.Values{}
	query.Set("origin", routeSpec.Origin().UnLocode().String())
	query.Set("destination", routeSpec.Destination().UnLocode().String())
	query.Set("deadline", routeSpec.ArrivalDeadline().Format(time.RFC3339))

	endpoint := c.baseURL + "/shortest-paths?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("path finder returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var paths []transitPath
	if err = json.NewDecoder(resp.Body).Decode(&paths); err != nil {
		return nil, fmt.Errorf("decode path finder response: %w", err)
	}

	return paths, nil
}

func (c *Client) toItinerary(ctx context.Context, path transitPath) (*cargo.Itinerary, error) {
	legs := make([]cargo.Leg, 0, len(path.TransitEdges))
	for _, edge := range path.TransitEdges {
		legVoyage, err := c.voyages.Get(ctx, voyage.Number(edge.VoyageNumber))
		if err != nil {
			return nil, err
		}

		loadLocation, err := c.location(ctx, edge.FromUnLocode)
		if err != nil {
			return nil, err
		}
		unloadLocation, err := c.location(ctx, edge.ToUnLocode)
		if err != nil {
			return nil, err
		}

		leg, err := cargo.NewLeg(legVoyage, loadLocation, unloadLocation, edge.FromDate, edge.ToDate)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}

	return cargo.NewItinerary(legs)
}

func (c *Client) location(ctx context.Context, code string) (location.Location, error) {
	unLocode, err := kernel.NewUnLocode(code)
	if err != nil {
		return location.Location{}, err
	}

	return c.locations.Get(ctx, unLocode)
}
