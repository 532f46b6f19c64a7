package config

const (
	PathHealthCheck = "/"

	PathCreateFlair     = "/create_flair"
	PathGetFlairs       = "/get_flairs"
	PathCountFlairs     = "/count_flairs"
	PathGetFlairName    = "/get_flair_name"
	PathGetFlairNames   = "/get_flair_names"
	PathCheckFlairNames = "/check_flair_names"
	PathGetFlairID      = "/get_flair_id"
	PathGetFlairIDs     = "/get_flair_ids"
	PathDumpFlair       = "/dump_flair"

	PathCreateInterest     = "/create_interest"
	PathGetInterests       = "/get_interests"
	PathCountInterests     = "/count_interests"
	PathGetInterestName    = "/get_interest_name"
	PathGetInterestNames   = "/get_interest_names"
	PathCheckInterestNames = "/check_interest_names"
	PathGetInterestID      = "/get_interest_id"
	PathGetInterestIDs     = "/get_interest_ids"
	PathDumpInterest       = "/dump_interest"

	PathCreateProfile = "/create_profile"
	PathGetProfiles   = "/get_profiles"
	PathCountProfiles = "/count_profiles"
	PathDumpProfile   = "/dump_profile"
)

const (
	DefaultPort   = 9090
	LogLevelDebug = "DEBUG"
)
