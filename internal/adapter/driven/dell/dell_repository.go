package dell

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/diillson/dell-inventory-report-go/internal/domain/entity"
	"github.com/diillson/dell-inventory-report-go/internal/domain/repository"
	"github.com/diillson/dell-inventory-report-go/internal/shared/types"
	"github.com/tidwall/gjson"
)

// Nomes dos parâmetros de query exigidos por cada endpoint. A diferença
// entre singular e plural é do contrato da API da Dell.
const (
	componentsTagParam   = "servicetag"
	entitlementsTagParam = "servicetags"
)

// maxErrorBody limita quanto do corpo de uma resposta de erro vai para a mensagem.
const maxErrorBody = 512

// DellRepositoryImpl implementa o DellRepository sobre net/http.
type DellRepositoryImpl struct {
	clientID        string
	clientSecret    string
	tokenURL        string
	componentsURL   string
	entitlementsURL string
	httpClient      *http.Client
}

// NewDellRepository cria uma nova implementação do DellRepository a partir da configuração resolvida.
func NewDellRepository(cfg types.Config) repository.DellRepository {
	return &DellRepositoryImpl{
		clientID:        cfg.ClientID,
		clientSecret:    cfg.ClientSecret,
		tokenURL:        cfg.TokenURL,
		componentsURL:   cfg.ComponentsURL,
		entitlementsURL: cfg.EntitlementsURL,
		httpClient:      &http.Client{Timeout: cfg.Timeout()},
	}
}

// GetAccessToken troca as credenciais do cliente por um bearer token.
func (r *DellRepositoryImpl) GetAccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("client_id", r.clientID)
	form.Set("client_secret", r.clientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", authError(r.tokenURL, 0, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", authError(r.tokenURL, 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", authError(r.tokenURL, resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", authError(r.tokenURL, resp.StatusCode, fmt.Errorf("unexpected response: %s", truncate(body)))
	}

	if !gjson.ValidBytes(body) {
		return "", authError(r.tokenURL, resp.StatusCode, errors.New("token response is not valid JSON"))
	}

	token := gjson.GetBytes(body, "access_token").String()
	if token == "" {
		return "", authError(r.tokenURL, resp.StatusCode, errors.New("could not retrieve access token"))
	}

	return token, nil
}

// GetAssetComponents busca o inventário de hardware de uma service tag.
// Um corpo null ou um objeto vazio retorna nil sem erro.
func (r *DellRepositoryImpl) GetAssetComponents(ctx context.Context, token, tag string) (*entity.AssetComponents, error) {
	var components *entity.AssetComponents
	if err := r.getJSON(ctx, token, tag, r.componentsURL, componentsTagParam, &components); err != nil {
		return nil, err
	}
	if components == nil || components.IsZero() {
		return nil, nil
	}
	return components, nil
}

// GetAssetEntitlements busca a lista de garantias de uma service tag.
// Elementos null viram registros vazios para manter a posição na lista.
func (r *DellRepositoryImpl) GetAssetEntitlements(ctx context.Context, token, tag string) ([]entity.AssetEntitlements, error) {
	var decoded []*entity.AssetEntitlements
	if err := r.getJSON(ctx, token, tag, r.entitlementsURL, entitlementsTagParam, &decoded); err != nil {
		return nil, err
	}

	entitlements := make([]entity.AssetEntitlements, 0, len(decoded))
	for _, e := range decoded {
		if e == nil {
			entitlements = append(entitlements, entity.AssetEntitlements{})
			continue
		}
		entitlements = append(entitlements, *e)
	}
	return entitlements, nil
}

func (r *DellRepositoryImpl) getJSON(ctx context.Context, token, tag, endpoint, param string, out interface{}) error {
	reqURL, err := url.Parse(endpoint)
	if err != nil {
		return &entity.FetchError{Kind: entity.ErrorKindNetwork, Tag: tag, URL: endpoint, Err: err}
	}
	query := reqURL.Query()
	query.Set(param, tag)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return &entity.FetchError{Kind: entity.ErrorKindNetwork, Tag: tag, URL: endpoint, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return &entity.FetchError{Kind: entity.ErrorKindNetwork, Tag: tag, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &entity.FetchError{Kind: entity.ErrorKindNetwork, Tag: tag, URL: endpoint, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode >= 400 {
		return &entity.FetchError{
			Kind:       entity.ErrorKindHTTP,
			Tag:        tag,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s: %s", http.StatusText(resp.StatusCode), truncate(body)),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &entity.FetchError{Kind: entity.ErrorKindParse, Tag: tag, URL: endpoint, StatusCode: resp.StatusCode, Err: err}
	}

	return nil
}

func authError(tokenURL string, status int, err error) error {
	return &entity.FetchError{Kind: entity.ErrorKindAuth, URL: tokenURL, StatusCode: status, Err: err}
}

func truncate(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		return text[:maxErrorBody] + "..."
	}
	return text
}
