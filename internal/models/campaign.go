// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// DataField names an attribute of CampaignData that a shape can be bound to.
type DataField string

const (
	FieldHook        DataField = "hook"
	FieldSubheading  DataField = "subheading"
	FieldBullets     DataField = "bullets"
	FieldProof       DataField = "proof"
	FieldCTAText     DataField = "cta_text"
	FieldCTALink     DataField = "cta_link"
	FieldHashtags    DataField = "hashtags"
	FieldCompanyName DataField = "company_name"
	FieldLocation    DataField = "location"
)

// DataFields lists every bindable campaign attribute.
var DataFields = []DataField{
	FieldHook, FieldSubheading, FieldBullets, FieldProof, FieldCTAText,
	FieldCTALink, FieldHashtags, FieldCompanyName, FieldLocation,
}

// Valid reports whether f names a known campaign attribute.
func (f DataField) Valid() bool {
	for _, known := range DataFields {
		if f == known {
			return true
		}
	}
	return false
}

// CampaignData is the per-generation content that data-bound shapes resolve
// against. It is supplied with each banner request and never stored on the
// template.
type CampaignData struct {
	Hook        string   `json:"hook"`
	Subheading  string   `json:"subheading"`
	Bullets     []string `json:"bullets"`
	Proof       string   `json:"proof"`
	CTAText     string   `json:"cta_text"`
	CTALink     string   `json:"cta_link"`
	Hashtags    []string `json:"hashtags"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location"`
}
