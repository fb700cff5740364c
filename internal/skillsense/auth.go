package skillsense

const (
	loginPath = "/auth/login"
	mePath    = "/auth/me"
)

// UserRecord is the backend's view of the authenticated user. It is replaced
// wholesale on every fetch, never mutated.
type UserRecord struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token. It does not persist the
// token; that ordering belongs to the session gate.
func (c *Client) Login(email, password string) (string, error) {
	var resp loginResponse
	if err := c.postJSON(loginPath, &loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}

	return resp.AccessToken, nil
}

// Me returns the user record for the stored token.
func (c *Client) Me() (*UserRecord, error) {
	var user UserRecord
	if err := c.getJSON(mePath, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
