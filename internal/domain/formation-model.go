package domain

// Formation is one Parcoursup program record. Only the id is guaranteed to be
// set; the enrichment fields below the admissions block are present only when
// HasDetailedInfo is true.
type Formation struct {
	ID string `bson:"_id,omitempty" json:"id"`

	// Establishment
	EstablishmentStatus string `bson:"establishmentStatus,omitempty" json:"establishmentStatus,omitempty"`
	EstablishmentName   string `bson:"establishmentName,omitempty" json:"establishmentName,omitempty"`
	Department          string `bson:"department,omitempty" json:"department,omitempty"`
	Region              string `bson:"region,omitempty" json:"region,omitempty"`
	Academy             string `bson:"academy,omitempty" json:"academy,omitempty"`
	Commune             string `bson:"commune,omitempty" json:"commune,omitempty"`

	// Program
	Program     string `bson:"program,omitempty" json:"program,omitempty"`
	Selectivity string `bson:"selectivity,omitempty" json:"selectivity,omitempty"`

	// Admissions
	CandidateCount     *int `bson:"candidateCount,omitempty" json:"candidateCount,omitempty"`
	AdmittedBacGeneral *int `bson:"admittedBacGeneral,omitempty" json:"admittedBacGeneral,omitempty"`
	AdmittedBacTechno  *int `bson:"admittedBacTechno,omitempty" json:"admittedBacTechno,omitempty"`
	AdmittedBacPro     *int `bson:"admittedBacPro,omitempty" json:"admittedBacPro,omitempty"`

	GeneralTerminalOfferPercentage      string `bson:"generalTerminalOfferPercentage,omitempty" json:"generalTerminalOfferPercentage,omitempty"`
	TechnoTerminalOfferPercentage       string `bson:"technoTerminalOfferPercentage,omitempty" json:"technoTerminalOfferPercentage,omitempty"`
	ProfessionalTerminalOfferPercentage string `bson:"professionalTerminalOfferPercentage,omitempty" json:"professionalTerminalOfferPercentage,omitempty"`

	// Enrichment (ecoles dataset)
	Duration            string `bson:"duration,omitempty" json:"duration,omitempty"`
	Cost                string `bson:"cost,omitempty" json:"cost,omitempty"`
	PrivatePublicStatus string `bson:"privatePublicStatus,omitempty" json:"privatePublicStatus,omitempty"`
	DomainsOffered      string `bson:"domainsOffered,omitempty" json:"domainsOffered,omitempty"`
	Website             string `bson:"website,omitempty" json:"website,omitempty"`
	StudentLife         string `bson:"studentLife,omitempty" json:"studentLife,omitempty"`
	Associations        string `bson:"associations,omitempty" json:"associations,omitempty"`
	ResidenceOptions    string `bson:"residenceOptions,omitempty" json:"residenceOptions,omitempty"`
	AdmissionProcess    string `bson:"admissionProcess,omitempty" json:"admissionProcess,omitempty"`
	Atmosphere          string `bson:"atmosphere,omitempty" json:"atmosphere,omitempty"`
	CareerProspects     string `bson:"careerProspects,omitempty" json:"careerProspects,omitempty"`
	HousingInfo         string `bson:"housingInfo,omitempty" json:"housingInfo,omitempty"`
	AlternanceAvailable string `bson:"alternanceAvailable,omitempty" json:"alternanceAvailable,omitempty"`
	OrientationAdvice   string `bson:"orientationAdvice,omitempty" json:"orientationAdvice,omitempty"`

	HasDetailedInfo bool `bson:"hasDetailedInfo" json:"hasDetailedInfo"`
}
