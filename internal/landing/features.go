package landing

// Feature is one card of the "Why NoLiquid" section
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Features returns the product features in display order
func Features() []Feature {
	return []Feature{
		{
			Title:       "No Liquidation Risk",
			Description: "Trade with confidence knowing your positions are protected from sudden liquidations.",
		},
		{
			Title:       "High Performance",
			Description: "Execute trades quickly with optimized infrastructure and smart routing.",
		},
		{
			Title:       "Secure & Decentralized",
			Description: "Maintain custody of your assets and trade securely from your wallet.",
		},
		{
			Title:       "Low Fees",
			Description: "Competitive trading fees with transparent pricing and no hidden charges.",
		},
		{
			Title:       "Advanced Tools",
			Description: "Professional-grade charting and analytics to support informed decisions.",
		},
		{
			Title:       "Multi-Chain Access",
			Description: "Connect to multiple blockchain networks through a single interface.",
		},
	}
}
