package render

import (
	"fmt"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	linkGroup        = "site"
	linkRoute        = "page"
	defaultPageRoute = "/:path"
)

// linkBuilder turns page filenames into link targets. Without a base URL the
// original relative filename is used, matching how the generated page sits
// next to its sources. With a base URL, links are built through a go-urlkit
// route so hosts can mirror their deployed URL scheme.
type linkBuilder struct {
	group *urlkit.Group
}

func newLinkBuilder(baseURL, pageRoute string) (*linkBuilder, error) {
	if baseURL == "" {
		return &linkBuilder{}, nil
	}
	if pageRoute == "" {
		pageRoute = defaultPageRoute
	}

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    linkGroup,
				BaseURL: baseURL,
				Paths: map[string]string{
					linkRoute: pageRoute,
				},
			},
		},
	})

	group, err := lookupGroup(manager, linkGroup)
	if err != nil {
		return nil, err
	}
	return &linkBuilder{group: group}, nil
}

// PageURL resolves the link target for one page filename.
func (b *linkBuilder) PageURL(filename string) (string, error) {
	if b.group == nil {
		return filename, nil
	}

	builder, err := safeBuilder(b.group, linkRoute)
	if err != nil {
		return "", err
	}
	url, err := builder.WithParam("path", filename).Build()
	if err != nil {
		return "", fmt.Errorf("render: build page url for %s: %w", filename, err)
	}
	return url, nil
}

// urlkit panics on unknown groups and routes; recover so a misconfigured
// route surfaces as an error instead.
func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("render: url route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("render: url builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}
