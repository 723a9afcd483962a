package s3

// Environment variables the connection details are read from.
const (
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvAccountID       = "CLOUDFLARE_ACCOUNT_ID"
	EnvRegion          = "AWS_DEFAULT_REGION"
)

const (
	// DefaultRegion is used when AWS_DEFAULT_REGION is unset.
	DefaultRegion = "us-east-1"

	// EndpointDomain is appended to the account id to build the endpoint host.
	EndpointDomain = "r2.cloudflarestorage.com"
)

// ClientDetails is a struct for all required connection details.
type ClientDetails struct {
	// AccountID selects the account specific endpoint {AccountID}.r2.cloudflarestorage.com.
	AccountID string
	// Host overrides the endpoint host (host or host:port). Optional.
	Host         string
	AccessKey    string
	AccessSecret string
	// Region defaults to DefaultRegion.
	Region string
	Secure bool
}

// LookupEnvFunc has the signature of os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// DetailsFromEnv builds ClientDetails from the environment. A non-empty host
// replaces the account endpoint, which makes CLOUDFLARE_ACCOUNT_ID optional.
// Every missing variable is reported at once.
func DetailsFromEnv(lookup LookupEnvFunc, host string) (*ClientDetails, error) {
	get := func(key string) string {
		value, _ := lookup(key)

		return value
	}

	details := &ClientDetails{
		AccountID:    get(EnvAccountID),
		Host:         host,
		AccessKey:    get(EnvAccessKeyID),
		AccessSecret: get(EnvSecretAccessKey),
		Region:       get(EnvRegion),
		Secure:       true,
	}

	if details.Region == "" {
		details.Region = DefaultRegion
	}

	if err := details.validate(); err != nil {
		return nil, err
	}

	return details, nil
}

func (d *ClientDetails) validate() error {
	var missing []string

	if d.AccessKey == "" {
		missing = append(missing, EnvAccessKeyID)
	}

	if d.AccessSecret == "" {
		missing = append(missing, EnvSecretAccessKey)
	}

	if d.AccountID == "" && d.Host == "" {
		missing = append(missing, EnvAccountID)
	}

	if len(missing) > 0 {
		return &MissingConfigError{Missing: missing}
	}

	return nil
}

func (d *ClientDetails) host() string {
	if d.Host != "" {
		return d.Host
	}

	return d.AccountID + "." + EndpointDomain
}

func (d *ClientDetails) scheme() string {
	if d.Secure {
		return "https"
	}

	return "http"
}

func (d *ClientDetails) region() string {
	if d.Region == "" {
		return DefaultRegion
	}

	return d.Region
}
