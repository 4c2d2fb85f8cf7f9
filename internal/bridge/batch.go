package bridge

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/opencode-ai/brandkit/internal/tokens"
)

// Surface is a named fixed-size export format.
type Surface struct {
	Name   string  `json:"name" yaml:"name"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// StandardSurfaces are the common display ad sizes.
var StandardSurfaces = []Surface{
	{Name: "medium-rectangle", Width: 300, Height: 250},
	{Name: "leaderboard", Width: 728, Height: 90},
	{Name: "mobile-banner", Width: 320, Height: 50},
	{Name: "wide-skyscraper", Width: 160, Height: 600},
	{Name: "half-page", Width: 300, Height: 600},
	{Name: "billboard", Width: 970, Height: 250},
}

// SurfaceResult pairs a surface with its resolved tokens.
type SurfaceResult struct {
	Surface  Surface  `json:"surface"`
	Resolved Resolved `json:"resolved"`
}

// ResolveBatch resolves every surface concurrently. Results keep the order
// of surfaces. The tree is cloned once and shared read-only.
func ResolveBatch(ctx context.Context, surfaces []Surface, o Overrides, tree *tokens.Tree) ([]SurfaceResult, error) {
	shared := tree.Clone()
	results := make([]SurfaceResult, len(surfaces))

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range surfaces {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("resolve %s: %w", s.Name, err)
			}
			results[i] = SurfaceResult{Surface: s, Resolved: Resolve(s.Width, s.Height, o, shared)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
