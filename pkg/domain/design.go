package domain

// DesignRecord is a label design as stored in the remote record store.
// Every record carries the tenant id of the session that created it;
// isolation between tenants is enforced by the remote service.
type DesignRecord struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}
