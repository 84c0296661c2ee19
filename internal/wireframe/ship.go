package wireframe

// shipVertices is the reference hull, authored Y-up with the nose toward +Z.
var shipVertices = [...]Vec3{
	{0.650832, 0.271315, -1.000000},
	{1.240349, -0.000333, 1.000000},
	{0.650832, 0.315481, -1.000000},
	{1.240348, 0.180615, 0.560630},
	{0.805783, -0.000334, 4.284117},
	{0.805782, 0.180615, 4.284118},
	{3.119281, -0.942804, 2.322021},
	{3.119280, -0.761855, 1.882651},
	{0.650832, 0.315481, -1.000000},
	{1.240348, 0.180615, 0.560630},
	{3.119280, -0.761855, 1.882651},
	{0.507604, 0.512063, -1.000000},
	{0.556329, 0.986010, 1.000001},
	{0.218978, 0.452316, 3.753458},
	{1.240349, -0.000333, -0.372761},
	{1.240349, 0.180615, -0.372760},
	{3.119281, -0.942804, 0.949260},
	{3.119281, -0.761855, 0.949260},
	{1.240349, 0.180615, -0.372760},
	{3.119281, -0.761855, 0.949260},
	{0.653542, 0.986010, -0.372760},
	{3.457423, -0.942803, 2.322021},
	{3.457423, -0.761854, 1.882651},
	{3.457423, -0.942803, 0.949260},
	{3.457423, -0.761854, 0.949261},
	{3.119281, -0.942804, 2.322021},
	{3.119280, -0.761855, 2.321895},
	{3.457423, -0.942803, 2.322021},
	{3.457423, -0.761854, 2.321895},
	{3.182715, -0.908858, 2.321997},
	{3.182715, -0.795800, 2.321919},
	{3.393988, -0.908857, 2.321997},
	{3.393988, -0.795800, 2.321919},
	{3.182715, -0.907922, 3.673004},
	{3.182715, -0.794865, 3.672926},
	{3.393988, -0.907922, 3.673004},
	{3.393988, -0.794865, 3.672926},
	{3.242466, -0.875948, 3.672982},
	{3.242466, -0.826839, 3.672948},
	{3.334237, -0.875948, 3.672982},
	{3.334237, -0.826839, 3.672948},
	{3.242466, -0.875760, 3.945883},
	{3.242466, -0.826651, 3.945849},
	{3.334237, -0.875760, 3.945883},
	{3.334237, -0.826651, 3.945849},
	{0.960107, 0.565249, 0.770461},
	{0.525541, 0.310371, 4.030690},
	{0.582431, 0.409363, -1.000000},
	{0.960107, 0.565249, -0.372760},
	{0.845504, 0.498033, 1.630241},
	{0.538940, 0.845265, 1.726136},
	{1.125746, 0.180615, 1.542580},
	{1.125746, -0.000333, 1.866080},
	{-0.650832, 0.271315, -1.000000},
	{-1.240349, -0.000333, 1.000000},
	{0.000000, -0.000333, 1.000000},
	{0.000000, 0.271315, -1.000000},
	{-0.650832, 0.315481, -1.000000},
	{-1.240348, 0.180615, 0.560630},
	{0.000000, 0.315481, -1.000000},
	{-0.805783, -0.000334, 4.284117},
	{0.000000, -0.000334, 5.383713},
	{-0.805782, 0.180615, 4.284118},
	{0.000000, 0.180615, 5.383713},
	{-3.119281, -0.942804, 2.322021},
	{-3.119280, -0.761855, 1.882651},
	{-0.650832, 0.315481, -1.000000},
	{-1.240348, 0.180615, 0.560630},
	{-3.119280, -0.761855, 1.882651},
	{-0.507604, 0.512063, -1.000000},
	{-0.556329, 0.986010, 1.000001},
	{0.000000, 0.986010, 1.000000},
	{0.000000, 0.512063, -1.000000},
	{-0.218978, 0.452316, 3.753458},
	{0.000000, 0.452316, 4.853053},
	{-1.240349, -0.000333, -0.372761},
	{0.000000, -0.000333, -0.372761},
	{-1.240349, 0.180615, -0.372760},
	{-3.119281, -0.942804, 0.949260},
	{-3.119281, -0.761855, 0.949260},
	{-1.240349, 0.180615, -0.372760},
	{-3.119281, -0.761855, 0.949260},
	{-0.653542, 0.986010, -0.372760},
	{0.000000, 0.986010, -0.372761},
	{-3.457423, -0.942803, 2.322021},
	{-3.457423, -0.761854, 1.882651},
	{-3.457423, -0.942803, 0.949260},
	{-3.457423, -0.761854, 0.949261},
	{-3.119281, -0.942804, 2.322021},
	{-3.119280, -0.761855, 2.321895},
	{-3.457423, -0.942803, 2.322021},
	{-3.457423, -0.761854, 2.321895},
	{-3.182715, -0.908858, 2.321997},
	{-3.182715, -0.795800, 2.321919},
	{-3.393988, -0.908857, 2.321997},
	{-3.393988, -0.795800, 2.321919},
	{-3.182715, -0.907922, 3.673004},
	{-3.182715, -0.794865, 3.672926},
	{-3.393988, -0.907922, 3.673004},
	{-3.393988, -0.794865, 3.672926},
	{-3.242466, -0.875948, 3.672982},
	{-3.242466, -0.826839, 3.672948},
	{-3.334237, -0.875948, 3.672982},
	{-3.334237, -0.826839, 3.672948},
	{-3.242466, -0.875760, 3.945883},
	{-3.242466, -0.826651, 3.945849},
	{-3.334237, -0.875760, 3.945883},
	{-3.334237, -0.826651, 3.945849},
	{0.000000, 0.409363, -1.000000},
	{-0.960107, 0.565249, 0.770461},
	{-0.525541, 0.310371, 4.030690},
	{-0.582431, 0.409363, -1.000000},
	{0.000000, 0.310371, 5.130285},
	{-0.960107, 0.565249, -0.372760},
	{-0.845504, 0.498033, 1.630241},
	{-0.538940, 0.845265, 1.726136},
	{0.000000, 0.948491, 1.700656},
	{0.000000, -0.000333, 2.156063},
	{-1.125746, 0.180615, 1.542580},
	{-1.125746, -0.000333, 1.866080},
}

var shipEdges = [...]Edge{
	{0, 2}, {0, 14}, {0, 56}, {1, 3}, {1, 6}, {1, 14}, {1, 52}, {1, 55},
	{2, 8}, {2, 15}, {2, 47}, {2, 59}, {3, 7}, {3, 9}, {3, 15}, {3, 45},
	{3, 51}, {4, 5}, {4, 52}, {4, 61}, {5, 46}, {5, 51}, {5, 63}, {6, 7},
	{6, 16}, {6, 21}, {6, 25}, {7, 10}, {7, 17}, {7, 22}, {7, 26}, {8, 18},
	{9, 10}, {9, 18}, {10, 19}, {11, 20}, {11, 47}, {11, 72}, {12, 20}, {12, 45},
	{12, 50}, {12, 71}, {13, 46}, {13, 50}, {13, 74}, {14, 15}, {14, 16}, {14, 18},
	{14, 76}, {15, 18}, {15, 48}, {16, 17}, {16, 19}, {16, 23}, {17, 19}, {17, 24},
	{18, 19}, {20, 48}, {20, 83}, {21, 22}, {21, 23}, {21, 27}, {22, 24}, {22, 28},
	{23, 24}, {25, 26}, {25, 27}, {25, 29}, {26, 28}, {26, 30}, {27, 28}, {27, 31},
	{28, 32}, {29, 30}, {29, 31}, {29, 33}, {30, 32}, {30, 34}, {31, 32}, {31, 35},
	{32, 36}, {33, 34}, {33, 35}, {33, 37}, {34, 36}, {34, 38}, {35, 36}, {35, 39},
	{36, 40}, {37, 38}, {37, 39}, {37, 41}, {38, 40}, {38, 42}, {39, 40}, {39, 43},
	{40, 44}, {41, 42}, {41, 43}, {42, 44}, {43, 44}, {45, 48}, {45, 49}, {46, 49},
	{46, 112}, {47, 48}, {47, 108}, {49, 50}, {49, 51}, {50, 116}, {51, 52}, {52, 117},
	{53, 56}, {53, 57}, {53, 75}, {54, 55}, {54, 58}, {54, 64}, {54, 75}, {54, 119},
	{55, 76}, {55, 117}, {56, 59}, {56, 76}, {57, 59}, {57, 66}, {57, 77}, {57, 111},
	{58, 65}, {58, 67}, {58, 77}, {58, 109}, {58, 118}, {59, 108}, {60, 61}, {60, 62},
	{60, 119}, {61, 63}, {61, 117}, {62, 63}, {62, 110}, {62, 118}, {63, 112}, {64, 65},
	{64, 78}, {64, 84}, {64, 88}, {65, 68}, {65, 79}, {65, 85}, {65, 89}, {66, 80},
	{67, 68}, {67, 80}, {68, 81}, {69, 72}, {69, 82}, {69, 111}, {70, 71}, {70, 82},
	{70, 109}, {70, 115}, {71, 83}, {71, 116}, {72, 83}, {72, 108}, {73, 74}, {73, 110},
	{73, 115}, {74, 112}, {74, 116}, {75, 76}, {75, 77}, {75, 78}, {75, 80}, {77, 80},
	{77, 113}, {78, 79}, {78, 81}, {78, 86}, {79, 81}, {79, 87}, {80, 81}, {82, 83},
	{82, 113}, {84, 85}, {84, 86}, {84, 90}, {85, 87}, {85, 91}, {86, 87}, {88, 89},
	{88, 90}, {88, 92}, {89, 91}, {89, 93}, {90, 91}, {90, 94}, {91, 95}, {92, 93},
	{92, 94}, {92, 96}, {93, 95}, {93, 97}, {94, 95}, {94, 98}, {95, 99}, {96, 97},
	{96, 98}, {96, 100}, {97, 99}, {97, 101}, {98, 99}, {98, 102}, {99, 103}, {100, 101},
	{100, 102}, {100, 104}, {101, 103}, {101, 105}, {102, 103}, {102, 106}, {103, 107}, {104, 105},
	{104, 106}, {105, 107}, {106, 107}, {108, 111}, {109, 113}, {109, 114}, {110, 112}, {110, 114},
	{111, 113}, {114, 115}, {114, 118}, {115, 116}, {117, 119}, {118, 119},
}
