package btyaml

import "github.com/joeycumines/content-bt/value"

type wirePayload map[string]wireHolder

func encodePayload(p value.Payload) (wirePayload, error) {
	w := make(wirePayload, p.Len())
	for name, h := range p.Entries() {
		wh, err := encodeHolder(h)
		if err != nil {
			return nil, err
		}
		w[name] = wh
	}
	return w, nil
}

func decodePayload(w wirePayload) (value.Payload, error) {
	values := make(map[string]value.Holder, len(w))
	for name, wh := range w {
		h, err := decodeHolder(wh)
		if err != nil {
			return value.Payload{}, err
		}
		values[name] = h
	}
	return value.NewPayload(values), nil
}
