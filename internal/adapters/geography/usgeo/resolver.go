package usgeo

import "context"

// Resolver implementa geography.StateValidator. Usa el servicio remoto si
// está configurado; si no, cae a la tabla estática embebida (a diferencia de
// otros upstreams acá sí tenemos un fallback local completo, así que no hay
// modo "fallar explícito").
type Resolver struct {
	client *Client
	static *Static
}

func NewResolver(client *Client) *Resolver {
	return &Resolver{
		client: client,
		static: NewStatic(),
	}
}

func (r *Resolver) ValidStateAbbreviation(ctx context.Context, code string) (bool, error) {
	if r == nil || r.client == nil || !r.client.IsConfigured() {
		return r.static.ValidStateAbbreviation(ctx, code)
	}
	return r.client.CheckState(ctx, code)
}
