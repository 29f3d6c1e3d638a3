package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/verifeed/verifeed/internal/common"
	"github.com/verifeed/verifeed/internal/imaging"
)

// TFServingClient scores tensors against a TensorFlow Serving instance over
// its REST predict API. The model stays frozen outside the process; this
// client only ships tensors and reads back the scalar output.
type TFServingClient struct {
	endpoint string
	model    string
	httpc    *http.Client
}

func NewTFServingClient(endpoint, model string, timeout time.Duration) *TFServingClient {
	return &TFServingClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		model:    model,
		httpc:    &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Inputs imaging.Tensor `json:"inputs"`
}

type predictResponse struct {
	Outputs [][]float64 `json:"outputs"`
	Error   string      `json:"error"`
}

// Predict implements Classifier. A tensor that does not match the model's
// 1 x InputSize x InputSize x Channels input shape is rejected before any
// request is made.
func (c *TFServingClient) Predict(ctx context.Context, t imaging.Tensor) (float64, error) {
	if err := validateShape(t); err != nil {
		return 0, err
	}

	body, err := json.Marshal(predictRequest{Inputs: t})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrInference, err)
	}

	url := fmt.Sprintf("%s/v1/models/%s:predict", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrInference, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrInference, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var pr predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrInference, err)
	}

	if resp.StatusCode != http.StatusOK {
		if pr.Error != "" {
			return 0, fmt.Errorf("%w: serving: %s", common.ErrInference, pr.Error)
		}
		return 0, fmt.Errorf("%w: serving returned %s", common.ErrInference, resp.Status)
	}

	if len(pr.Outputs) == 0 || len(pr.Outputs[0]) == 0 {
		return 0, fmt.Errorf("%w: empty prediction", common.ErrInference)
	}

	score := pr.Outputs[0][0]
	if score < 0 || score > 1 {
		return 0, fmt.Errorf("%w: score %v outside [0,1]", common.ErrInference, score)
	}

	return score, nil
}

func validateShape(t imaging.Tensor) error {
	if len(t) != 1 || len(t[0]) != imaging.InputSize {
		return fmt.Errorf("%w: malformed tensor shape", common.ErrInference)
	}
	for _, row := range t[0] {
		if len(row) != imaging.InputSize {
			return fmt.Errorf("%w: malformed tensor shape", common.ErrInference)
		}
		for _, px := range row {
			if len(px) != imaging.Channels {
				return fmt.Errorf("%w: malformed tensor shape", common.ErrInference)
			}
		}
	}
	return nil
}
