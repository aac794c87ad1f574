package config

type (
	InternalConfig struct {
		App      App
		EMR      EMR
		FHIR     FHIR
		JWT      JWT
		Mortuary Mortuary
		Reports  Reports
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Minio    Minio
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                  string
		Port                 string
		Version              string
		Address              string
		Timezone             string
		EndpointPrefix       string
		MaxRequests          int
		ShutdownTimeout      int
		SuperadminAPIKeyHash string
	}

	EMR struct {
		BaseUrl  string
		Username string
		Password string
	}

	FHIR struct {
		BaseUrl string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	// Mortuary holds the EMR metadata the workflows are wired to: the ward,
	// the visit type opened on admission and the encounter types per action.
	Mortuary struct {
		LocationUUID               string
		VisitTypeUUID              string
		AdmissionEncounterType     string
		DischargeEncounterType     string
		DisposalEncounterType      string
		BedAssignmentEncounterType string
		AutopsyEncounterType       string
		CacheTTLSeconds            int
		EventsQueueName            string
	}

	// Reports maps each printable-report field to the stable concept id its
	// observation is looked up by.
	Reports struct {
		ConceptReleasedTo       string
		ConceptBurialPermit     string
		ConceptNextOfKin        string
		ConceptAutopsyFindings  string
		ConceptCauseOfDeath     string
		ConceptPathologistNotes string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
