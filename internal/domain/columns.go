package domain

// Column names of the raw LFB animal rescue dataset, plus the derived
// calendar columns the pipeline appends.
const (
	ColIncidentNumber     = "incident_number"
	ColDateTimeOfCall     = "date_time_of_call"
	ColCalYear            = "cal_year"
	ColFinYear            = "fin_year"
	ColTypeOfIncident     = "type_of_incident"
	ColPumpCount          = "pump_count"
	ColPumpHoursTotal     = "pump_hours_total"
	ColHourlyNotionalCost = "hourly_notional_cost"
	ColIncidentCost       = "incident_notional_cost"
	ColFinalDescription   = "final_description"
	ColAnimalGroupParent  = "animal_group_parent"
	ColOriginOfCall       = "originof_call"
	ColPropertyType       = "property_type"
	ColPropertyCategory   = "property_category"
	ColSpecialServiceType = "special_service_type"
	ColWardCode           = "ward_code"
	ColWard               = "ward"
	ColBoroughCode        = "borough_code"
	ColBorough            = "borough"
	ColStnGroundName      = "stn_ground_name"
	ColUPRN               = "uprn"
	ColStreet             = "street"
	ColUSRN               = "usrn"
	ColPostcodeDistrict   = "postcode_district"
	ColEastingM           = "easting_m"
	ColNorthingM          = "northing_m"
	ColEastingRounded     = "easting_rounded"
	ColNorthingRounded    = "northing_rounded"
	ColLatitude           = "latitude"
	ColLongitude          = "longitude"

	ColYear      = "year"
	ColMonth     = "month"
	ColDayOfWeek = "dayofweek"
	ColHour      = "hour"
)
