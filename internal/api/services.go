package api

// Service accessors group Client methods by endpoint family. Each service
// embeds *Client so the shared pipeline (build, execute, decode, map,
// normalize) stays in one place.

type SalesService struct{ *Client }

type GamesService struct{ *Client }

type TopService struct{ *Client }

type AppsService struct{ *Client }

// Sales returns the sales report estimates service.
func (c *Client) Sales() SalesService { return SalesService{c} }

// Games returns the games breakdown service.
func (c *Client) Games() GamesService { return GamesService{c} }

// Top returns the top-and-trending charts service.
func (c *Client) Top() TopService { return TopService{c} }

// Apps returns the app metadata service.
func (c *Client) Apps() AppsService { return AppsService{c} }
