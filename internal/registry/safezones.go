package registry

import "github.com/UnknownOlympus/exodus/internal/models"

// safeZones is the static destination table, in registry order. Ties in distance resolve
// to the earlier entry, so the order is part of the contract.
//
//nolint:gochecknoglobals,lll // static table
var safeZones = []models.SafeZone{
	// WEST COAST

	// California
	{Name: "Los Angeles", Point: models.GeoPoint{Latitude: 34.0522, Longitude: -118.2437}},
	{Name: "San Francisco", Point: models.GeoPoint{Latitude: 37.7749, Longitude: -122.4194}},
	{Name: "San Diego", Point: models.GeoPoint{Latitude: 32.7157, Longitude: -117.1611}},
	{Name: "San Jose", Point: models.GeoPoint{Latitude: 37.3382, Longitude: -121.8863}},
	{Name: "Sacramento", Point: models.GeoPoint{Latitude: 38.5816, Longitude: -121.4944}},
	{Name: "Fresno", Point: models.GeoPoint{Latitude: 36.7378, Longitude: -119.7871}},
	{Name: "Long Beach", Point: models.GeoPoint{Latitude: 33.7701, Longitude: -118.1937}},
	{Name: "Oakland", Point: models.GeoPoint{Latitude: 37.8044, Longitude: -122.2711}},
	{Name: "Bakersfield", Point: models.GeoPoint{Latitude: 35.3733, Longitude: -119.0019}},
	{Name: "Stockton", Point: models.GeoPoint{Latitude: 37.9577, Longitude: -121.4908}},
	{Name: "Santa Barbara", Point: models.GeoPoint{Latitude: 34.4251, Longitude: -119.8548}},
	{Name: "Modesto", Point: models.GeoPoint{Latitude: 37.3382, Longitude: -120.4194}},

	// Oregon
	{Name: "Portland", Point: models.GeoPoint{Latitude: 45.5152, Longitude: -122.6784}},
	{Name: "Eugene", Point: models.GeoPoint{Latitude: 44.0521, Longitude: -123.0862}},
	{Name: "Salem", Point: models.GeoPoint{Latitude: 44.9429, Longitude: -123.0351}},
	{Name: "Bend", Point: models.GeoPoint{Latitude: 44.0582, Longitude: -121.3093}},
	{Name: "Medford", Point: models.GeoPoint{Latitude: 42.8365, Longitude: -122.8544}},

	// Washington
	{Name: "Seattle", Point: models.GeoPoint{Latitude: 47.6062, Longitude: -122.3321}},
	{Name: "Spokane", Point: models.GeoPoint{Latitude: 47.6588, Longitude: -117.4260}},
	{Name: "Tacoma", Point: models.GeoPoint{Latitude: 47.2529, Longitude: -122.4443}},
	{Name: "Olympia", Point: models.GeoPoint{Latitude: 47.0379, Longitude: -122.9007}},
	{Name: "Bellingham", Point: models.GeoPoint{Latitude: 48.7569, Longitude: -122.6443}},
	{Name: "Tri-Cities WA", Point: models.GeoPoint{Latitude: 46.2626, Longitude: -119.0794}},

	// MOUNTAIN / INTERMOUNTAIN

	// Arizona
	{Name: "Phoenix", Point: models.GeoPoint{Latitude: 33.4484, Longitude: -112.0740}},
	{Name: "Tucson", Point: models.GeoPoint{Latitude: 32.2226, Longitude: -110.9747}},
	{Name: "Mesa", Point: models.GeoPoint{Latitude: 33.2148, Longitude: -111.8315}},
	{Name: "Flagstaff", Point: models.GeoPoint{Latitude: 35.1983, Longitude: -111.6513}},
	{Name: "Yuma", Point: models.GeoPoint{Latitude: 32.7228, Longitude: -111.4546}},

	// Nevada
	{Name: "Las Vegas", Point: models.GeoPoint{Latitude: 36.1699, Longitude: -115.1398}},
	{Name: "Reno", Point: models.GeoPoint{Latitude: 39.5296, Longitude: -119.8138}},
	{Name: "Henderson", Point: models.GeoPoint{Latitude: 36.0397, Longitude: -114.9842}},
	{Name: "Carson City", Point: models.GeoPoint{Latitude: 39.1638, Longitude: -119.7674}},

	// Utah
	{Name: "Salt Lake City", Point: models.GeoPoint{Latitude: 40.7608, Longitude: -111.8910}},
	{Name: "Provo", Point: models.GeoPoint{Latitude: 40.2332, Longitude: -111.7019}},
	{Name: "Orem", Point: models.GeoPoint{Latitude: 40.2969, Longitude: -111.6991}},
	{Name: "Ogden", Point: models.GeoPoint{Latitude: 41.0833, Longitude: -111.8712}},
	{Name: "St George UT", Point: models.GeoPoint{Latitude: 37.2982, Longitude: -113.3054}},

	// Idaho
	{Name: "Boise", Point: models.GeoPoint{Latitude: 43.6150, Longitude: -116.2023}},
	{Name: "Nampa", Point: models.GeoPoint{Latitude: 43.5115, Longitude: -116.5630}},
	{Name: "Idaho Falls", Point: models.GeoPoint{Latitude: 43.4774, Longitude: -112.0408}},
	{Name: "Pocatello", Point: models.GeoPoint{Latitude: 42.8713, Longitude: -112.4485}},
	{Name: "Coeur d Alene", Point: models.GeoPoint{Latitude: 47.6769, Longitude: -116.7800}},
	{Name: "Twin Falls", Point: models.GeoPoint{Latitude: 42.5630, Longitude: -114.4605}},

	// Montana
	{Name: "Billings", Point: models.GeoPoint{Latitude: 45.7833, Longitude: -108.5007}},
	{Name: "Missoula", Point: models.GeoPoint{Latitude: 46.8797, Longitude: -114.0240}},
	{Name: "Great Falls", Point: models.GeoPoint{Latitude: 47.4942, Longitude: -111.2833}},
	{Name: "Bozeman", Point: models.GeoPoint{Latitude: 45.6794, Longitude: -111.0394}},
	{Name: "Butte", Point: models.GeoPoint{Latitude: 45.9649, Longitude: -112.5301}},
	{Name: "Helena", Point: models.GeoPoint{Latitude: 46.5891, Longitude: -112.0391}},
	{Name: "Kalispell", Point: models.GeoPoint{Latitude: 48.2966, Longitude: -114.3145}},

	// Wyoming
	{Name: "Cheyenne", Point: models.GeoPoint{Latitude: 41.1400, Longitude: -104.8202}},
	{Name: "Casper", Point: models.GeoPoint{Latitude: 42.8420, Longitude: -106.2468}},
	{Name: "Laramie", Point: models.GeoPoint{Latitude: 41.0934, Longitude: -104.8210}},
	{Name: "Gillette", Point: models.GeoPoint{Latitude: 44.2699, Longitude: -104.8363}},
	{Name: "Rock Springs", Point: models.GeoPoint{Latitude: 41.5905, Longitude: -109.2280}},

	// Colorado
	{Name: "Denver", Point: models.GeoPoint{Latitude: 39.7392, Longitude: -104.9903}},
	{Name: "Colorado Springs", Point: models.GeoPoint{Latitude: 38.8561, Longitude: -104.8408}},
	{Name: "Aurora", Point: models.GeoPoint{Latitude: 39.5294, Longitude: -104.8318}},
	{Name: "Fort Collins", Point: models.GeoPoint{Latitude: 40.5853, Longitude: -105.0844}},
	{Name: "Boulder", Point: models.GeoPoint{Latitude: 40.0150, Longitude: -105.2705}},
	{Name: "Pueblo", Point: models.GeoPoint{Latitude: 38.0838, Longitude: -103.5428}},
	{Name: "Grand Junction", Point: models.GeoPoint{Latitude: 39.0639, Longitude: -108.5506}},
	{Name: "Durango", Point: models.GeoPoint{Latitude: 37.2750, Longitude: -107.8383}},

	// New Mexico
	{Name: "Albuquerque", Point: models.GeoPoint{Latitude: 35.0844, Longitude: -106.6504}},
	{Name: "Las Cruces", Point: models.GeoPoint{Latitude: 32.3176, Longitude: -106.7914}},
	{Name: "Rio Rancho", Point: models.GeoPoint{Latitude: 35.2870, Longitude: -106.9647}},
	{Name: "Santa Fe", Point: models.GeoPoint{Latitude: 35.6870, Longitude: -105.9378}},
	{Name: "Roswell", Point: models.GeoPoint{Latitude: 33.2476, Longitude: -104.5319}},
	{Name: "Farmington NM", Point: models.GeoPoint{Latitude: 36.7781, Longitude: -108.7376}},

	// Texas
	{Name: "El Paso", Point: models.GeoPoint{Latitude: 31.7619, Longitude: -106.4850}},
	{Name: "Houston", Point: models.GeoPoint{Latitude: 29.7604, Longitude: -95.3698}},
	{Name: "San Antonio", Point: models.GeoPoint{Latitude: 29.4241, Longitude: -98.4936}},
	{Name: "Dallas", Point: models.GeoPoint{Latitude: 32.7767, Longitude: -96.7970}},
	{Name: "Fort Worth", Point: models.GeoPoint{Latitude: 32.7555, Longitude: -97.3308}},
	{Name: "Austin", Point: models.GeoPoint{Latitude: 30.2672, Longitude: -97.7431}},
	{Name: "Corpus Christi", Point: models.GeoPoint{Latitude: 27.8006, Longitude: -97.3964}},
	{Name: "Arlington TX", Point: models.GeoPoint{Latitude: 32.7366, Longitude: -97.0945}},
	{Name: "Lubbock", Point: models.GeoPoint{Latitude: 33.5442, Longitude: -101.9423}},
	{Name: "Amarillo", Point: models.GeoPoint{Latitude: 35.2225, Longitude: -101.7948}},
	{Name: "Midland", Point: models.GeoPoint{Latitude: 31.9960, Longitude: -102.0976}},
	{Name: "McAllen", Point: models.GeoPoint{Latitude: 26.2034, Longitude: -98.2334}},
	{Name: "Brownsville", Point: models.GeoPoint{Latitude: 25.8602, Longitude: -97.4936}},
	{Name: "Waco", Point: models.GeoPoint{Latitude: 31.5493, Longitude: -97.1467}},
	{Name: "Tyler", Point: models.GeoPoint{Latitude: 32.3513, Longitude: -95.2785}},
	{Name: "Beaumont", Point: models.GeoPoint{Latitude: 30.0861, Longitude: -94.1038}},
	{Name: "Sherman TX", Point: models.GeoPoint{Latitude: 33.5966, Longitude: -96.8985}},

	// PLAINS

	// Oklahoma
	{Name: "Oklahoma City", Point: models.GeoPoint{Latitude: 35.4676, Longitude: -97.5164}},
	{Name: "Tulsa", Point: models.GeoPoint{Latitude: 36.1539, Longitude: -95.9928}},
	{Name: "Norman OK", Point: models.GeoPoint{Latitude: 35.2225, Longitude: -97.4378}},
	{Name: "Lawton", Point: models.GeoPoint{Latitude: 34.5961, Longitude: -98.4900}},
	{Name: "Enid", Point: models.GeoPoint{Latitude: 36.3956, Longitude: -97.7876}},

	// Kansas
	{Name: "Wichita", Point: models.GeoPoint{Latitude: 37.6872, Longitude: -97.4398}},
	{Name: "Kansas City KS", Point: models.GeoPoint{Latitude: 39.0978, Longitude: -94.5786}},
	{Name: "Overland Park", Point: models.GeoPoint{Latitude: 38.9146, Longitude: -94.6868}},
	{Name: "Topeka", Point: models.GeoPoint{Latitude: 39.0473, Longitude: -95.6752}},
	{Name: "Dodge City", Point: models.GeoPoint{Latitude: 37.7560, Longitude: -100.3781}},
	{Name: "Manhattan KS", Point: models.GeoPoint{Latitude: 39.1837, Longitude: -96.6499}},

	// Nebraska
	{Name: "Omaha", Point: models.GeoPoint{Latitude: 41.2451, Longitude: -95.9358}},
	{Name: "Lincoln NE", Point: models.GeoPoint{Latitude: 40.8136, Longitude: -96.7026}},
	{Name: "Grand Island", Point: models.GeoPoint{Latitude: 40.9264, Longitude: -98.3420}},
	{Name: "Kearney", Point: models.GeoPoint{Latitude: 40.6994, Longitude: -99.0818}},
	{Name: "North Platte", Point: models.GeoPoint{Latitude: 41.1380, Longitude: -100.7654}},
	{Name: "Scottsbluff", Point: models.GeoPoint{Latitude: 41.8753, Longitude: -103.9127}},

	// South Dakota
	{Name: "Sioux Falls", Point: models.GeoPoint{Latitude: 43.5460, Longitude: -96.7311}},
	{Name: "Rapid City", Point: models.GeoPoint{Latitude: 44.0738, Longitude: -103.0384}},
	{Name: "Pierre", Point: models.GeoPoint{Latitude: 44.3668, Longitude: -100.3538}},
	{Name: "Aberdeen SD", Point: models.GeoPoint{Latitude: 44.3683, Longitude: -98.4940}},
	{Name: "Mitchell", Point: models.GeoPoint{Latitude: 43.6047, Longitude: -98.3156}},

	// North Dakota
	{Name: "Fargo", Point: models.GeoPoint{Latitude: 46.8797, Longitude: -96.7026}},
	{Name: "Bismarck", Point: models.GeoPoint{Latitude: 46.8083, Longitude: -100.7837}},
	{Name: "Grand Forks", Point: models.GeoPoint{Latitude: 47.9971, Longitude: -97.1536}},
	{Name: "Minot", Point: models.GeoPoint{Latitude: 48.2296, Longitude: -101.2943}},
	{Name: "Williston", Point: models.GeoPoint{Latitude: 48.1582, Longitude: -103.7369}},

	// Minnesota
	{Name: "Minneapolis", Point: models.GeoPoint{Latitude: 44.9778, Longitude: -93.2650}},
	{Name: "St Paul", Point: models.GeoPoint{Latitude: 44.9537, Longitude: -93.0900}},
	{Name: "Duluth", Point: models.GeoPoint{Latitude: 46.8408, Longitude: -92.1219}},
	{Name: "Rochester MN", Point: models.GeoPoint{Latitude: 43.6946, Longitude: -92.2963}},
	{Name: "St Cloud", Point: models.GeoPoint{Latitude: 45.5588, Longitude: -94.3036}},
	{Name: "Mankato", Point: models.GeoPoint{Latitude: 44.1636, Longitude: -94.0816}},
	{Name: "Bemidji", Point: models.GeoPoint{Latitude: 47.5550, Longitude: -94.3789}},

	// Iowa
	{Name: "Des Moines", Point: models.GeoPoint{Latitude: 41.5868, Longitude: -93.6250}},
	{Name: "Cedar Rapids", Point: models.GeoPoint{Latitude: 41.8781, Longitude: -91.6460}},
	{Name: "Davenport", Point: models.GeoPoint{Latitude: 41.6005, Longitude: -90.5787}},
	{Name: "Iowa City", Point: models.GeoPoint{Latitude: 41.6408, Longitude: -91.5335}},
	{Name: "Sioux City", Point: models.GeoPoint{Latitude: 42.4963, Longitude: -96.0425}},
	{Name: "Ames", Point: models.GeoPoint{Latitude: 42.0347, Longitude: -93.6088}},
	{Name: "Waterloo", Point: models.GeoPoint{Latitude: 42.4774, Longitude: -92.3310}},

	// Missouri
	{Name: "St Louis", Point: models.GeoPoint{Latitude: 38.6270, Longitude: -90.1994}},
	{Name: "Kansas City", Point: models.GeoPoint{Latitude: 39.0997, Longitude: -94.5786}},
	{Name: "Springfield MO", Point: models.GeoPoint{Latitude: 37.2080, Longitude: -93.2969}},
	{Name: "Columbia MO", Point: models.GeoPoint{Latitude: 38.8517, Longitude: -92.3276}},
	{Name: "Jefferson City", Point: models.GeoPoint{Latitude: 38.5767, Longitude: -92.1736}},
	{Name: "Joplin", Point: models.GeoPoint{Latitude: 37.0842, Longitude: -94.5132}},
	{Name: "St Joseph", Point: models.GeoPoint{Latitude: 39.7675, Longitude: -94.8467}},

	// SOUTH / SOUTHEAST

	// Arkansas
	{Name: "Little Rock", Point: models.GeoPoint{Latitude: 34.7465, Longitude: -92.2896}},
	{Name: "Fort Smith", Point: models.GeoPoint{Latitude: 35.3322, Longitude: -94.2688}},
	{Name: "Fayetteville AR", Point: models.GeoPoint{Latitude: 36.0627, Longitude: -94.1571}},
	{Name: "Jonesboro", Point: models.GeoPoint{Latitude: 34.8253, Longitude: -90.0198}},
	{Name: "Bentonville", Point: models.GeoPoint{Latitude: 36.3748, Longitude: -94.2088}},

	// Louisiana
	{Name: "New Orleans", Point: models.GeoPoint{Latitude: 29.9511, Longitude: -90.0715}},
	{Name: "Baton Rouge", Point: models.GeoPoint{Latitude: 30.4515, Longitude: -91.1874}},
	{Name: "Shreveport", Point: models.GeoPoint{Latitude: 32.5254, Longitude: -93.7502}},
	{Name: "Lafayette LA", Point: models.GeoPoint{Latitude: 30.2127, Longitude: -92.0193}},
	{Name: "Lake Charles", Point: models.GeoPoint{Latitude: 30.1864, Longitude: -93.2508}},
	{Name: "Monroe LA", Point: models.GeoPoint{Latitude: 32.5354, Longitude: -92.0198}},

	// Mississippi
	{Name: "Jackson MS", Point: models.GeoPoint{Latitude: 32.2988, Longitude: -90.1848}},
	{Name: "Gulfport", Point: models.GeoPoint{Latitude: 30.4671, Longitude: -89.5301}},
	{Name: "Hattiesburg", Point: models.GeoPoint{Latitude: 31.3043, Longitude: -89.3342}},
	{Name: "Meridian MS", Point: models.GeoPoint{Latitude: 32.3425, Longitude: -88.7037}},
	{Name: "Southaven", Point: models.GeoPoint{Latitude: 35.0753, Longitude: -90.0151}},

	// Alabama
	{Name: "Birmingham", Point: models.GeoPoint{Latitude: 33.5206, Longitude: -86.8024}},
	{Name: "Mobile", Point: models.GeoPoint{Latitude: 30.6943, Longitude: -88.0445}},
	{Name: "Huntsville", Point: models.GeoPoint{Latitude: 34.7304, Longitude: -86.8801}},
	{Name: "Montgomery", Point: models.GeoPoint{Latitude: 32.3617, Longitude: -86.2792}},
	{Name: "Tuscaloosa", Point: models.GeoPoint{Latitude: 33.2096, Longitude: -87.5369}},
	{Name: "Decatur AL", Point: models.GeoPoint{Latitude: 34.5901, Longitude: -86.9836}},

	// Tennessee
	{Name: "Nashville", Point: models.GeoPoint{Latitude: 36.1627, Longitude: -86.7816}},
	{Name: "Memphis", Point: models.GeoPoint{Latitude: 35.1495, Longitude: -90.0490}},
	{Name: "Knoxville", Point: models.GeoPoint{Latitude: 35.9606, Longitude: -83.9207}},
	{Name: "Chattanooga", Point: models.GeoPoint{Latitude: 35.0456, Longitude: -85.3101}},
	{Name: "Clarksville", Point: models.GeoPoint{Latitude: 36.5396, Longitude: -87.3511}},
	{Name: "Johnson City", Point: models.GeoPoint{Latitude: 36.3229, Longitude: -82.3535}},
	{Name: "Murfreesboro", Point: models.GeoPoint{Latitude: 35.8462, Longitude: -86.3951}},

	// Kentucky
	{Name: "Louisville", Point: models.GeoPoint{Latitude: 38.2527, Longitude: -85.7585}},
	{Name: "Lexington", Point: models.GeoPoint{Latitude: 38.0406, Longitude: -84.5096}},
	{Name: "Bowling Green", Point: models.GeoPoint{Latitude: 36.9684, Longitude: -86.7828}},
	{Name: "Owensboro", Point: models.GeoPoint{Latitude: 37.7731, Longitude: -87.1692}},
	{Name: "Covington KY", Point: models.GeoPoint{Latitude: 39.0837, Longitude: -84.5088}},
	{Name: "Paducah", Point: models.GeoPoint{Latitude: 36.8401, Longitude: -88.7598}},

	// West Virginia
	{Name: "Charleston WV", Point: models.GeoPoint{Latitude: 38.3498, Longitude: -81.6326}},
	{Name: "Huntington WV", Point: models.GeoPoint{Latitude: 38.4204, Longitude: -82.4446}},
	{Name: "Morgantown", Point: models.GeoPoint{Latitude: 39.6299, Longitude: -79.9553}},
	{Name: "Parkersburg", Point: models.GeoPoint{Latitude: 39.2678, Longitude: -81.5538}},

	// Virginia
	{Name: "Richmond", Point: models.GeoPoint{Latitude: 37.5407, Longitude: -77.4360}},
	{Name: "Norfolk", Point: models.GeoPoint{Latitude: 36.8508, Longitude: -76.0121}},
	{Name: "Virginia Beach", Point: models.GeoPoint{Latitude: 36.8529, Longitude: -75.9780}},
	{Name: "Roanoke", Point: models.GeoPoint{Latitude: 37.2750, Longitude: -79.9419}},
	{Name: "Charlottesville", Point: models.GeoPoint{Latitude: 38.0216, Longitude: -78.4774}},

	// North Carolina
	{Name: "Charlotte", Point: models.GeoPoint{Latitude: 35.2271, Longitude: -80.8431}},
	{Name: "Raleigh", Point: models.GeoPoint{Latitude: 35.7796, Longitude: -78.6382}},
	{Name: "Durham", Point: models.GeoPoint{Latitude: 35.9132, Longitude: -78.8753}},
	{Name: "Greensboro", Point: models.GeoPoint{Latitude: 36.0456, Longitude: -79.7930}},
	{Name: "Winston-Salem", Point: models.GeoPoint{Latitude: 36.1074, Longitude: -80.2507}},
	{Name: "Asheville", Point: models.GeoPoint{Latitude: 35.5675, Longitude: -82.5514}},
	{Name: "Wilmington NC", Point: models.GeoPoint{Latitude: 34.2241, Longitude: -77.9456}},
	{Name: "Fayetteville NC", Point: models.GeoPoint{Latitude: 35.0527, Longitude: -78.8784}},
	{Name: "High Point", Point: models.GeoPoint{Latitude: 36.0117, Longitude: -79.9951}},

	// South Carolina
	{Name: "Charleston SC", Point: models.GeoPoint{Latitude: 32.7767, Longitude: -79.9310}},
	{Name: "Greenville SC", Point: models.GeoPoint{Latitude: 34.8517, Longitude: -82.3941}},
	{Name: "Columbia SC", Point: models.GeoPoint{Latitude: 34.0007, Longitude: -81.0348}},
	{Name: "Myrtle Beach", Point: models.GeoPoint{Latitude: 33.6946, Longitude: -78.8890}},
	{Name: "Spartanburg", Point: models.GeoPoint{Latitude: 34.2959, Longitude: -81.9455}},

	// Georgia
	{Name: "Atlanta", Point: models.GeoPoint{Latitude: 33.7490, Longitude: -84.3880}},
	{Name: "Savannah", Point: models.GeoPoint{Latitude: 32.0809, Longitude: -81.0742}},
	{Name: "Augusta GA", Point: models.GeoPoint{Latitude: 33.4484, Longitude: -81.9807}},
	{Name: "Columbus GA", Point: models.GeoPoint{Latitude: 32.5085, Longitude: -84.8748}},
	{Name: "Macon", Point: models.GeoPoint{Latitude: 32.5416, Longitude: -83.6077}},
	{Name: "Albany GA", Point: models.GeoPoint{Latitude: 31.5392, Longitude: -84.1441}},

	// Florida
	{Name: "Miami", Point: models.GeoPoint{Latitude: 25.7617, Longitude: -80.1918}},
	{Name: "Tampa", Point: models.GeoPoint{Latitude: 27.9506, Longitude: -82.4572}},
	{Name: "Orlando", Point: models.GeoPoint{Latitude: 28.5383, Longitude: -81.3792}},
	{Name: "Jacksonville", Point: models.GeoPoint{Latitude: 30.3322, Longitude: -81.6557}},
	{Name: "Fort Lauderdale", Point: models.GeoPoint{Latitude: 26.1287, Longitude: -80.1342}},
	{Name: "St Petersburg FL", Point: models.GeoPoint{Latitude: 27.7676, Longitude: -82.6403}},
	{Name: "Hialeah", Point: models.GeoPoint{Latitude: 25.8617, Longitude: -80.2783}},
	{Name: "Tallahassee", Point: models.GeoPoint{Latitude: 30.4383, Longitude: -84.2807}},
	{Name: "Pensacola", Point: models.GeoPoint{Latitude: 30.4738, Longitude: -87.2509}},
	{Name: "Panama City FL", Point: models.GeoPoint{Latitude: 30.1686, Longitude: -85.6808}},
	{Name: "Naples", Point: models.GeoPoint{Latitude: 26.1420, Longitude: -81.7948}},
	{Name: "Key West", Point: models.GeoPoint{Latitude: 24.5551, Longitude: -81.7874}},

	// MID-ATLANTIC

	// Maryland
	{Name: "Baltimore", Point: models.GeoPoint{Latitude: 39.2904, Longitude: -76.6122}},
	{Name: "Rockville", Point: models.GeoPoint{Latitude: 39.0837, Longitude: -77.1541}},
	{Name: "Frederick MD", Point: models.GeoPoint{Latitude: 39.4199, Longitude: -77.2922}},
	{Name: "Annapolis", Point: models.GeoPoint{Latitude: 38.9072, Longitude: -76.4977}},
	{Name: "Cumberland MD", Point: models.GeoPoint{Latitude: 39.6393, Longitude: -78.7445}},

	// Delaware
	{Name: "Wilmington DE", Point: models.GeoPoint{Latitude: 39.7392, Longitude: -75.5244}},
	{Name: "Dover DE", Point: models.GeoPoint{Latitude: 38.9180, Longitude: -75.5244}},
	{Name: "Newark DE", Point: models.GeoPoint{Latitude: 39.6837, Longitude: -75.7568}},

	// Pennsylvania
	{Name: "Philadelphia", Point: models.GeoPoint{Latitude: 39.9526, Longitude: -75.1652}},
	{Name: "Pittsburgh", Point: models.GeoPoint{Latitude: 40.4406, Longitude: -79.9959}},
	{Name: "Harrisburg", Point: models.GeoPoint{Latitude: 40.2732, Longitude: -76.8867}},
	{Name: "Allentown", Point: models.GeoPoint{Latitude: 40.6084, Longitude: -75.4903}},
	{Name: "Erie PA", Point: models.GeoPoint{Latitude: 42.1266, Longitude: -79.9578}},
	{Name: "Reading PA", Point: models.GeoPoint{Latitude: 40.3365, Longitude: -75.9474}},
	{Name: "Scranton", Point: models.GeoPoint{Latitude: 41.4042, Longitude: -75.6624}},
	{Name: "Lancaster PA", Point: models.GeoPoint{Latitude: 40.0379, Longitude: -76.1968}},
	{Name: "York PA", Point: models.GeoPoint{Latitude: 39.9626, Longitude: -76.9309}},

	// New Jersey
	{Name: "Newark NJ", Point: models.GeoPoint{Latitude: 40.7357, Longitude: -74.1724}},
	{Name: "Jersey City", Point: models.GeoPoint{Latitude: 40.7178, Longitude: -74.0431}},
	{Name: "Paterson", Point: models.GeoPoint{Latitude: 40.9168, Longitude: -74.1718}},
	{Name: "Elizabeth NJ", Point: models.GeoPoint{Latitude: 40.6637, Longitude: -74.2104}},
	{Name: "Trenton", Point: models.GeoPoint{Latitude: 40.2206, Longitude: -74.7597}},
	{Name: "Atlantic City", Point: models.GeoPoint{Latitude: 39.3643, Longitude: -74.4229}},
	{Name: "Morristown NJ", Point: models.GeoPoint{Latitude: 40.7984, Longitude: -74.4977}},

	// Washington DC
	{Name: "Washington DC", Point: models.GeoPoint{Latitude: 38.9072, Longitude: -77.0369}},

	// NORTHEAST

	// New York
	{Name: "New York", Point: models.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}},
	{Name: "Buffalo", Point: models.GeoPoint{Latitude: 42.8864, Longitude: -78.8784}},
	{Name: "Albany", Point: models.GeoPoint{Latitude: 42.6526, Longitude: -73.7562}},
	{Name: "Syracuse", Point: models.GeoPoint{Latitude: 42.8554, Longitude: -76.0378}},
	{Name: "Rochester NY", Point: models.GeoPoint{Latitude: 43.1609, Longitude: -77.6107}},
	{Name: "Yonkers", Point: models.GeoPoint{Latitude: 40.9312, Longitude: -73.8988}},
	{Name: "New Rochelle", Point: models.GeoPoint{Latitude: 40.9090, Longitude: -73.8046}},
	{Name: "Utica", Point: models.GeoPoint{Latitude: 43.2609, Longitude: -75.2955}},
	{Name: "Ithaca", Point: models.GeoPoint{Latitude: 42.4430, Longitude: -76.4969}},

	// Connecticut
	{Name: "Hartford", Point: models.GeoPoint{Latitude: 41.7658, Longitude: -72.6734}},
	{Name: "New Haven", Point: models.GeoPoint{Latitude: 41.3081, Longitude: -72.9246}},
	{Name: "Bridgeport", Point: models.GeoPoint{Latitude: 41.1853, Longitude: -73.0244}},
	{Name: "Stamford CT", Point: models.GeoPoint{Latitude: 41.0534, Longitude: -73.5387}},
	{Name: "Waterbury", Point: models.GeoPoint{Latitude: 41.4845, Longitude: -73.0351}},

	// Rhode Island
	{Name: "Providence", Point: models.GeoPoint{Latitude: 41.8240, Longitude: -71.4128}},
	{Name: "Cranston", Point: models.GeoPoint{Latitude: 41.7798, Longitude: -71.4385}},
	{Name: "Warwick", Point: models.GeoPoint{Latitude: 41.7365, Longitude: -71.4165}},

	// Massachusetts
	{Name: "Boston", Point: models.GeoPoint{Latitude: 42.3601, Longitude: -71.0589}},
	{Name: "Springfield MA", Point: models.GeoPoint{Latitude: 42.0809, Longitude: -72.5763}},
	{Name: "Worcester", Point: models.GeoPoint{Latitude: 42.2626, Longitude: -71.8044}},
	{Name: "Cambridge MA", Point: models.GeoPoint{Latitude: 42.3736, Longitude: -71.1182}},
	{Name: "Lowell", Point: models.GeoPoint{Latitude: 42.6334, Longitude: -71.3081}},
	{Name: "New Bedford", Point: models.GeoPoint{Latitude: 41.6360, Longitude: -70.9440}},
	{Name: "Brockton", Point: models.GeoPoint{Latitude: 42.0817, Longitude: -71.0389}},

	// Vermont
	{Name: "Burlington VT", Point: models.GeoPoint{Latitude: 44.4759, Longitude: -73.2096}},
	{Name: "Montpelier", Point: models.GeoPoint{Latitude: 44.2601, Longitude: -72.5754}},
	{Name: "Rutland VT", Point: models.GeoPoint{Latitude: 43.6074, Longitude: -72.9635}},
	{Name: "St Johnsbury", Point: models.GeoPoint{Latitude: 43.6843, Longitude: -72.0131}},

	// New Hampshire
	{Name: "Manchester NH", Point: models.GeoPoint{Latitude: 42.9956, Longitude: -71.5376}},
	{Name: "Nashua", Point: models.GeoPoint{Latitude: 42.7870, Longitude: -71.5401}},
	{Name: "Concord NH", Point: models.GeoPoint{Latitude: 43.2081, Longitude: -71.5376}},
	{Name: "Portsmouth NH", Point: models.GeoPoint{Latitude: 43.0797, Longitude: -70.7593}},
	{Name: "Claremont NH", Point: models.GeoPoint{Latitude: 43.3780, Longitude: -72.3378}},

	// Maine
	{Name: "Portland ME", Point: models.GeoPoint{Latitude: 43.6615, Longitude: -70.2558}},
	{Name: "Augusta ME", Point: models.GeoPoint{Latitude: 44.3106, Longitude: -69.7795}},
	{Name: "Bangor ME", Point: models.GeoPoint{Latitude: 44.4894, Longitude: -68.5765}},
	{Name: "Lewiston ME", Point: models.GeoPoint{Latitude: 44.1006, Longitude: -70.2641}},
	{Name: "Presque Isle", Point: models.GeoPoint{Latitude: 46.6778, Longitude: -68.0000}},

	// MIDWEST / GREAT LAKES

	// Illinois
	{Name: "Chicago", Point: models.GeoPoint{Latitude: 41.8781, Longitude: -87.6298}},
	{Name: "Aurora IL", Point: models.GeoPoint{Latitude: 41.2577, Longitude: -88.0844}},
	{Name: "Rockford", Point: models.GeoPoint{Latitude: 41.2687, Longitude: -89.9840}},
	{Name: "Joliet", Point: models.GeoPoint{Latitude: 41.5297, Longitude: -88.0856}},
	{Name: "Springfield IL", Point: models.GeoPoint{Latitude: 39.7817, Longitude: -89.6501}},
	{Name: "Peoria IL", Point: models.GeoPoint{Latitude: 40.6984, Longitude: -89.5786}},
	{Name: "Champaign", Point: models.GeoPoint{Latitude: 40.1247, Longitude: -88.2437}},
	{Name: "Decatur IL", Point: models.GeoPoint{Latitude: 39.8253, Longitude: -88.8408}},

	// Indiana
	{Name: "Indianapolis", Point: models.GeoPoint{Latitude: 39.7684, Longitude: -86.1581}},
	{Name: "Fort Wayne", Point: models.GeoPoint{Latitude: 41.0788, Longitude: -85.1394}},
	{Name: "Evansville", Point: models.GeoPoint{Latitude: 37.8753, Longitude: -87.5311}},
	{Name: "South Bend", Point: models.GeoPoint{Latitude: 41.6764, Longitude: -86.2520}},
	{Name: "Gary", Point: models.GeoPoint{Latitude: 41.5834, Longitude: -87.3314}},
	{Name: "Bloomington IN", Point: models.GeoPoint{Latitude: 39.1657, Longitude: -86.1581}},
	{Name: "Muncie", Point: models.GeoPoint{Latitude: 40.1967, Longitude: -85.3924}},
	{Name: "Kokomo", Point: models.GeoPoint{Latitude: 40.4774, Longitude: -85.8208}},
	{Name: "Lafayette IN", Point: models.GeoPoint{Latitude: 40.4215, Longitude: -86.9081}},
	{Name: "Richmond IN", Point: models.GeoPoint{Latitude: 39.8337, Longitude: -84.2947}},
	{Name: "Terre Haute", Point: models.GeoPoint{Latitude: 39.4685, Longitude: -87.4119}},

	// Ohio
	{Name: "Columbus OH", Point: models.GeoPoint{Latitude: 39.9612, Longitude: -82.9988}},
	{Name: "Cleveland", Point: models.GeoPoint{Latitude: 41.4993, Longitude: -81.6944}},
	{Name: "Cincinnati", Point: models.GeoPoint{Latitude: 39.1031, Longitude: -84.5120}},
	{Name: "Toledo OH", Point: models.GeoPoint{Latitude: 41.6567, Longitude: -83.5367}},
	{Name: "Akron", Point: models.GeoPoint{Latitude: 41.0810, Longitude: -81.5190}},
	{Name: "Dayton", Point: models.GeoPoint{Latitude: 39.7684, Longitude: -84.1590}},
	{Name: "Youngstown", Point: models.GeoPoint{Latitude: 41.0996, Longitude: -80.6483}},
	{Name: "Canton OH", Point: models.GeoPoint{Latitude: 40.8025, Longitude: -81.4175}},

	// Michigan
	{Name: "Detroit", Point: models.GeoPoint{Latitude: 42.3314, Longitude: -83.0458}},
	{Name: "Grand Rapids", Point: models.GeoPoint{Latitude: 42.9634, Longitude: -85.6681}},
	{Name: "Warren MI", Point: models.GeoPoint{Latitude: 42.6314, Longitude: -83.0458}},
	{Name: "Sterling Heights", Point: models.GeoPoint{Latitude: 42.5809, Longitude: -83.0311}},
	{Name: "Lansing", Point: models.GeoPoint{Latitude: 42.7325, Longitude: -84.5555}},
	{Name: "Ann Arbor", Point: models.GeoPoint{Latitude: 42.2808, Longitude: -83.0442}},
	{Name: "Flint", Point: models.GeoPoint{Latitude: 42.9675, Longitude: -83.7282}},
	{Name: "Dearborn", Point: models.GeoPoint{Latitude: 42.3314, Longitude: -83.2603}},
	{Name: "Marquette MI", Point: models.GeoPoint{Latitude: 46.5563, Longitude: -84.5777}},
	{Name: "Traverse City", Point: models.GeoPoint{Latitude: 44.7338, Longitude: -85.6780}},
	{Name: "Kalamazoo", Point: models.GeoPoint{Latitude: 42.2745, Longitude: -85.5585}},
	{Name: "Battle Creek", Point: models.GeoPoint{Latitude: 42.3314, Longitude: -85.2500}},
	{Name: "Saginaw", Point: models.GeoPoint{Latitude: 43.4195, Longitude: -83.9494}},

	// Wisconsin
	{Name: "Milwaukee", Point: models.GeoPoint{Latitude: 43.0389, Longitude: -87.9065}},
	{Name: "Madison WI", Point: models.GeoPoint{Latitude: 43.0731, Longitude: -89.4012}},
	{Name: "Green Bay", Point: models.GeoPoint{Latitude: 44.5115, Longitude: -88.0296}},
	{Name: "Kenosha", Point: models.GeoPoint{Latitude: 42.5847, Longitude: -87.8212}},
	{Name: "Racine", Point: models.GeoPoint{Latitude: 42.7261, Longitude: -87.7896}},
	{Name: "Appleton", Point: models.GeoPoint{Latitude: 44.2601, Longitude: -88.4113}},
	{Name: "Waukesha", Point: models.GeoPoint{Latitude: 42.9964, Longitude: -88.2319}},
	{Name: "Oshkosh WI", Point: models.GeoPoint{Latitude: 44.0247, Longitude: -88.5427}},
	{Name: "La Crosse", Point: models.GeoPoint{Latitude: 43.8074, Longitude: -91.2396}},
	{Name: "Superior WI", Point: models.GeoPoint{Latitude: 46.6808, Longitude: -92.1043}},

	// ALASKA & HAWAII
	{Name: "Anchorage", Point: models.GeoPoint{Latitude: 61.2181, Longitude: -149.9003}},
	{Name: "Fairbanks", Point: models.GeoPoint{Latitude: 64.8378, Longitude: -147.7164}},
	{Name: "Juneau", Point: models.GeoPoint{Latitude: 58.3005, Longitude: -134.4197}},
	{Name: "Ketchikan", Point: models.GeoPoint{Latitude: 55.3477, Longitude: -131.6609}},
	{Name: "Kodiak", Point: models.GeoPoint{Latitude: 57.7956, Longitude: -152.4093}},
	{Name: "Honolulu", Point: models.GeoPoint{Latitude: 21.3069, Longitude: -157.8583}},
	{Name: "Hilo HI", Point: models.GeoPoint{Latitude: 19.5445, Longitude: -155.0099}},
	{Name: "Kailua-Kona", Point: models.GeoPoint{Latitude: 19.6404, Longitude: -155.9737}},
	{Name: "Maui", Point: models.GeoPoint{Latitude: 20.7984, Longitude: -156.3319}},

	// US TERRITORIES

	// Puerto Rico
	{Name: "San Juan PR", Point: models.GeoPoint{Latitude: 18.4655, Longitude: -66.1057}},
	{Name: "Bayamon PR", Point: models.GeoPoint{Latitude: 18.3987, Longitude: -66.1603}},
	{Name: "Carolina PR", Point: models.GeoPoint{Latitude: 18.3801, Longitude: -65.9757}},
	{Name: "Ponce PR", Point: models.GeoPoint{Latitude: 18.4766, Longitude: -66.5723}},
	{Name: "Mayaguez PR", Point: models.GeoPoint{Latitude: 18.1003, Longitude: -66.9754}},
	{Name: "Caguas PR", Point: models.GeoPoint{Latitude: 18.2419, Longitude: -66.0385}},

	// US Virgin Islands
	{Name: "St Thomas USVI", Point: models.GeoPoint{Latitude: 18.3430, Longitude: -64.9336}},
	{Name: "St Croix USVI", Point: models.GeoPoint{Latitude: 17.7488, Longitude: -64.7332}},

	// Guam
	{Name: "Hagatna Guam", Point: models.GeoPoint{Latitude: 13.4563, Longitude: 144.7494}},

	// American Samoa
	{Name: "Pago Pago AS", Point: models.GeoPoint{Latitude: -14.2681, Longitude: -170.6934}},

	// Northern Mariana Islands
	{Name: "Saipan CNMI", Point: models.GeoPoint{Latitude: 15.2069, Longitude: 145.7613}},
}
