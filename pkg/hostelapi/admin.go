package hostelapi

import (
	"context"
	"net/http"
)

type CreateSecurityAccount struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	HostelID string `json:"hostelId,omitempty"`
}

type SecurityAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	HostelID string `json:"hostelId,omitempty"`
}

type Hostel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *Client) AddSecurity(ctx context.Context, sid string, dto CreateSecurityAccount) (*SecurityAccount, error) {
	var env dataEnvelope[*SecurityAccount]
	if _, err := c.do(ctx, http.MethodPost, "/admin/security", sid, nil, dto, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) Hostels(ctx context.Context, sid string) ([]Hostel, error) {
	var env dataEnvelope[[]Hostel]
	if _, err := c.do(ctx, http.MethodGet, "/admin/hostels", sid, nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
