package cvrdex

import "context"

// SearchName lists companies whose registered name starts with the given
// phrase, best match first.
func (c *Client) SearchName(ctx context.Context, name string) ([]Company, error) {
	dcs, err := c.lookup.ByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return companiesFromDomain(dcs), nil
}

// SearchFuzzyName lists companies whose registered name approximately
// matches the given phrase, tolerating typos.
func (c *Client) SearchFuzzyName(ctx context.Context, name string) ([]Company, error) {
	dcs, err := c.lookup.ByFuzzyName(ctx, name)
	if err != nil {
		return nil, err
	}
	return companiesFromDomain(dcs), nil
}

// SearchEmail lists companies registered with the given email address.
func (c *Client) SearchEmail(ctx context.Context, email string) ([]Company, error) {
	dcs, err := c.lookup.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return companiesFromDomain(dcs), nil
}

// SearchEmailDomain lists companies registered with an email address under
// the given domain. Pass the bare domain without a leading @.
func (c *Client) SearchEmailDomain(ctx context.Context, domain string) ([]Company, error) {
	dcs, err := c.lookup.ByEmailDomain(ctx, domain)
	if err != nil {
		return nil, err
	}
	return companiesFromDomain(dcs), nil
}

// SearchPhone lists companies registered with the given phone number.
func (c *Client) SearchPhone(ctx context.Context, phone string) ([]Company, error) {
	dcs, err := c.lookup.ByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	return companiesFromDomain(dcs), nil
}
