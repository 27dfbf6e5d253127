package smshub

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/polkiloo/smsrent/internal/domain/model"
)

const (
	prefixNumber  = "ACCESS_NUMBER:"
	prefixStatus  = "STATUS_OK:"
	prefixBalance = "ACCESS_BALANCE:"
)

// ParseReply turns the outcome of a Client.Call into a tagged reply.
func ParseReply(raw string, err error) model.Reply {
	if err != nil {
		return model.TransportFailure{Err: err}
	}

	switch {
	case strings.HasPrefix(raw, prefixNumber):
		parts := strings.Split(raw, ":")
		if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
			return model.Opaque{Raw: raw}
		}
		return model.NumberIssued{ID: parts[1], Number: parts[2], Raw: raw}
	case strings.HasPrefix(raw, prefixStatus):
		return model.CodeReceived{Code: strings.TrimPrefix(raw, prefixStatus), Raw: raw}
	case strings.HasPrefix(raw, prefixBalance):
		return model.BalanceReport{Value: strings.Split(raw, ":")[1], Raw: raw}
	case raw == string(model.AckActivation):
		return model.Ack{Kind: model.AckActivation, Raw: raw}
	case raw == string(model.AckCancel):
		return model.Ack{Kind: model.AckCancel, Raw: raw}
	}

	switch model.AckKind(strings.ToUpper(strings.TrimSpace(raw))) {
	case model.AckReady:
		return model.Ack{Kind: model.AckReady, Raw: raw}
	case model.AckRetryGet:
		return model.Ack{Kind: model.AckRetryGet, Raw: raw}
	}

	return model.Opaque{Raw: raw}
}

// ParsePrices extracts the price list of a service in a country from the
// getPrices payload {country: {service: {price: count}}}. Only prices with
// stock and a positive value are kept; the result is strictly ascending.
// A missing key or an empty JSON array at any level yields an empty list.
func ParsePrices(raw, service, country string) ([]float64, error) {
	if !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("decode prices: invalid JSON %q", raw)
	}

	offers := jsonObject(jsonObject(jsonObject(json.RawMessage(raw))[country])[service])
	prices := make([]float64, 0, len(offers))
	for key, value := range offers {
		var count float64
		if err := json.Unmarshal(value, &count); err != nil || count <= 0 {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(key), 64)
		if err != nil || !(price > 0) || math.IsInf(price, 1) {
			continue
		}
		prices = append(prices, price)
	}

	slices.Sort(prices)
	return slices.Compact(prices), nil
}

// jsonObject decodes one level of a JSON object; anything else is empty.
func jsonObject(raw json.RawMessage) map[string]json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	return obj
}
